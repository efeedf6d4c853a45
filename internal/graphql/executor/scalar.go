package executor

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/vektah/gqlparser/v2/ast"
)

// Scalar converts between resolver values and the wire representation of a scalar type.
type Scalar interface {
	// Serialize turns a resolved value into a JSON-encodable value.
	Serialize(v any) (any, error)
	// ParseValue coerces a variable value decoded from JSON.
	ParseValue(v any) (any, error)
	// ParseLiteral coerces a value written inline in the document.
	ParseLiteral(v *ast.Value) (any, error)
}

func builtinScalars() map[string]Scalar {
	return map[string]Scalar{
		"Int":     intScalar{},
		"Float":   floatScalar{},
		"String":  stringScalar{},
		"Boolean": booleanScalar{},
		"ID":      idScalar{},
	}
}

func invalidValue(typeName string, v any) error {
	return apperror.Validation(fmt.Sprintf("%s cannot represent value: %v", typeName, v))
}

// wholeInt64 reports whether f is integral and fits in an int64.
// float64(math.MaxInt64) rounds up to 2^63, hence the strict bound.
func wholeInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

type intScalar struct{}

func (intScalar) Serialize(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case *int:
		if n == nil {
			return nil, nil
		}
		return *n, nil
	case int32:
		return int(n), nil
	case int64:
		return n, nil
	case float64:
		if i, ok := wholeInt64(n); ok {
			return i, nil
		}
	}
	return nil, apperror.Internal(fmt.Sprintf("Int cannot represent value: %v", v))
}

func (intScalar) ParseValue(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int(n), nil
		}
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 32); err == nil {
			return int(i), nil
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 32); err == nil {
			return int(i), nil
		}
	}
	return nil, invalidValue("Int", v)
}

func (intScalar) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.IntValue {
		return nil, invalidValue("Int", v.Raw)
	}
	i, err := strconv.ParseInt(v.Raw, 10, 32)
	if err != nil {
		return nil, invalidValue("Int", v.Raw)
	}
	return int(i), nil
}

type floatScalar struct{}

func (floatScalar) Serialize(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return nil, apperror.Internal(fmt.Sprintf("Float cannot represent value: %v", v))
}

func (floatScalar) ParseValue(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, nil
		}
	}
	return nil, invalidValue("Float", v)
}

func (floatScalar) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.IntValue && v.Kind != ast.FloatValue {
		return nil, invalidValue("Float", v.Raw)
	}
	f, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil {
		return nil, invalidValue("Float", v.Raw)
	}
	return f, nil
}

type stringScalar struct{}

func (stringScalar) Serialize(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case *string:
		if s == nil {
			return nil, nil
		}
		return *s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, apperror.Internal(fmt.Sprintf("String cannot represent value: %v", v))
}

func (stringScalar) ParseValue(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, invalidValue("String", v)
}

func (stringScalar) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.StringValue && v.Kind != ast.BlockValue {
		return nil, invalidValue("String", v.Raw)
	}
	return v.Raw, nil
}

type booleanScalar struct{}

func (booleanScalar) Serialize(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, apperror.Internal(fmt.Sprintf("Boolean cannot represent value: %v", v))
}

func (booleanScalar) ParseValue(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, invalidValue("Boolean", v)
}

func (booleanScalar) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.BooleanValue {
		return nil, invalidValue("Boolean", v.Raw)
	}
	return v.Raw == "true", nil
}

// idScalar keeps identifiers as opaque strings.
type idScalar struct{}

func (idScalar) Serialize(v any) (any, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case fmt.Stringer:
		return id.String(), nil
	case int:
		return strconv.Itoa(id), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	}
	return nil, apperror.Internal(fmt.Sprintf("ID cannot represent value: %v", v))
}

func (idScalar) ParseValue(v any) (any, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case float64:
		if i, ok := wholeInt64(id); ok {
			return strconv.FormatInt(i, 10), nil
		}
	case int:
		return strconv.Itoa(id), nil
	case json.Number:
		return id.String(), nil
	}
	return nil, invalidValue("ID", v)
}

func (idScalar) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.StringValue && v.Kind != ast.IntValue {
		return nil, invalidValue("ID", v.Raw)
	}
	return v.Raw, nil
}
