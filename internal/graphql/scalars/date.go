// Package scalars holds the custom scalar codecs of the schema.
package scalars

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/vektah/gqlparser/v2/ast"
)

const DateName = "Date"

// Date is transmitted as a millisecond Unix timestamp and resolved to time.Time.
// Inline literals other than Int coerce to null instead of failing.
type Date struct{}

func (Date) Serialize(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UnixMilli(), nil
	case *time.Time:
		if t == nil {
			return nil, nil
		}
		return t.UnixMilli(), nil
	}
	return nil, apperror.Internal(fmt.Sprintf("Date cannot represent value: %v", v))
}

func (Date) ParseValue(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 2^63, hence the strict bound.
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return fromMillis(int64(n)), nil
		}
	case int:
		return fromMillis(int64(n)), nil
	case int64:
		return fromMillis(n), nil
	case json.Number:
		if ms, err := n.Int64(); err == nil {
			return fromMillis(ms), nil
		}
	}
	return nil, apperror.Validation(fmt.Sprintf("Date expects a millisecond timestamp, got %v", v))
}

func (Date) ParseLiteral(v *ast.Value) (any, error) {
	if v.Kind != ast.IntValue {
		return nil, nil
	}
	ms, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("Date literal out of range: %s", v.Raw))
	}
	return fromMillis(ms), nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
