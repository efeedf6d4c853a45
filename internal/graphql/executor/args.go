package executor

import (
	"fmt"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/vektah/gqlparser/v2/ast"
)

// Args holds the coerced arguments of one field.
// Arguments that were not supplied and have no default are absent.
type Args map[string]any

func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// StringPtr returns nil when the argument is absent or null.
func (a Args) StringPtr(name string) *string {
	s, ok := a[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (a Args) Int(name string) int {
	n, _ := a[name].(int)
	return n
}

// IntPtr returns nil when the argument is absent or null.
func (a Args) IntPtr(name string) *int {
	n, ok := a[name].(int)
	if !ok {
		return nil
	}
	return &n
}

func (ec *execContext) coerceArguments(defs ast.ArgumentDefinitionList, args ast.ArgumentList) (Args, error) {
	out := make(Args, len(defs))
	for _, def := range defs {
		arg := args.ForName(def.Name)

		var (
			v   any
			err error
		)
		switch {
		case arg == nil:
			if def.DefaultValue == nil {
				continue
			}
			v, err = ec.coerceLiteral(def.Type, def.DefaultValue)
		case arg.Value.Kind == ast.Variable:
			raw, ok := ec.vars[arg.Value.Raw]
			if !ok {
				if def.DefaultValue == nil {
					continue
				}
				v, err = ec.coerceLiteral(def.Type, def.DefaultValue)
				break
			}
			v, err = ec.coerceVariable(def.Type, raw)
		default:
			v, err = ec.coerceLiteral(def.Type, arg.Value)
		}
		if err != nil {
			return nil, apperror.Prefix(err, fmt.Sprintf("argument %q", def.Name))
		}
		// A custom scalar may map a literal to nil even for a non-null argument.
		out[def.Name] = v
	}
	return out, nil
}

func (ec *execContext) coerceLiteral(typ *ast.Type, value *ast.Value) (any, error) {
	switch value.Kind {
	case ast.NullValue:
		return nil, nil
	case ast.Variable:
		return ec.coerceVariable(typ, ec.vars[value.Raw])
	}

	if typ.Elem != nil {
		if value.Kind != ast.ListValue {
			item, err := ec.coerceLiteral(typ.Elem, value)
			if err != nil {
				return nil, err
			}
			return []any{item}, nil
		}
		items := make([]any, 0, len(value.Children))
		for _, child := range value.Children {
			item, err := ec.coerceLiteral(typ.Elem, child.Value)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	def := ec.exec.schema.Types[typ.NamedType]
	if def == nil {
		return nil, apperror.Internal("unknown input type " + typ.NamedType)
	}
	switch def.Kind {
	case ast.Scalar:
		return ec.exec.scalar(def.Name).ParseLiteral(value)
	case ast.Enum:
		return value.Raw, nil
	case ast.InputObject:
		obj := make(map[string]any, len(value.Children))
		for _, child := range value.Children {
			field := def.Fields.ForName(child.Name)
			if field == nil {
				return nil, apperror.Validation(fmt.Sprintf("unknown field %q on %s", child.Name, def.Name))
			}
			v, err := ec.coerceLiteral(field.Type, child.Value)
			if err != nil {
				return nil, err
			}
			obj[child.Name] = v
		}
		return obj, nil
	}
	return nil, apperror.Internal(fmt.Sprintf("%s is not an input type", def.Name))
}

func (ec *execContext) coerceVariable(typ *ast.Type, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	if typ.Elem != nil {
		list, ok := raw.([]any)
		if !ok {
			item, err := ec.coerceVariable(typ.Elem, raw)
			if err != nil {
				return nil, err
			}
			return []any{item}, nil
		}
		items := make([]any, 0, len(list))
		for _, r := range list {
			item, err := ec.coerceVariable(typ.Elem, r)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	def := ec.exec.schema.Types[typ.NamedType]
	if def == nil {
		return nil, apperror.Internal("unknown input type " + typ.NamedType)
	}
	switch def.Kind {
	case ast.Scalar:
		return ec.exec.scalar(def.Name).ParseValue(raw)
	case ast.Enum:
		s, ok := raw.(string)
		if !ok {
			return nil, invalidValue(def.Name, raw)
		}
		return s, nil
	case ast.InputObject:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, invalidValue(def.Name, raw)
		}
		obj := make(map[string]any, len(m))
		for _, field := range def.Fields {
			r, present := m[field.Name]
			if !present {
				continue
			}
			v, err := ec.coerceVariable(field.Type, r)
			if err != nil {
				return nil, err
			}
			obj[field.Name] = v
		}
		return obj, nil
	}
	return nil, apperror.Internal(fmt.Sprintf("%s is not an input type", def.Name))
}
