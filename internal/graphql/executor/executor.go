// Package executor runs GraphQL operations against a schema and a table of
// field resolvers keyed by (type, field).
//
// The executor owns document validation, variable and argument coercion,
// field collection, value completion and per-field error collection. Resolvers
// only see a typed parent value and coerced arguments:
//
//	exec := executor.New(schema)
//	executor.Fields(exec, "Query", map[string]executor.FieldFunc[executor.Root]{
//	    "hello": func(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
//	        return "world", nil
//	    },
//	})
//	resp := exec.Execute(ctx, executor.Params{Query: "{ hello }"})
package executor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldResolver produces the value of one field for a parent value.
type FieldResolver func(ctx context.Context, source any, args Args) (any, error)

// FieldFunc is a FieldResolver with a typed parent value.
type FieldFunc[T any] func(ctx context.Context, obj T, args Args) (any, error)

// Root is the parent value of root operation fields.
type Root struct{}

const defaultMaxConcurrency = 16

type Executor struct {
	schema         *ast.Schema
	resolvers      map[string]map[string]FieldResolver
	scalars        map[string]Scalar
	maxConcurrency int
	presenter      ErrorPresenter
}

type Option func(*Executor)

// WithScalar registers the codec of a custom scalar declared in the schema.
func WithScalar(name string, s Scalar) Option {
	return func(e *Executor) {
		e.scalars[name] = s
	}
}

// WithMaxConcurrency bounds the number of sibling fields resolved at once.
// Values below 1 resolve siblings one at a time.
func WithMaxConcurrency(n int) Option {
	return func(e *Executor) {
		if n < 1 {
			n = 1
		}
		e.maxConcurrency = n
	}
}

// WithErrorPresenter replaces the default resolver error presenter.
func WithErrorPresenter(p ErrorPresenter) Option {
	return func(e *Executor) {
		e.presenter = p
	}
}

func New(schema *ast.Schema, opts ...Option) *Executor {
	e := &Executor{
		schema:         schema,
		resolvers:      make(map[string]map[string]FieldResolver),
		scalars:        builtinScalars(),
		maxConcurrency: defaultMaxConcurrency,
		presenter:      DefaultErrorPresenter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

// Register sets the resolver of typeName.fieldName, replacing any previous one.
func (e *Executor) Register(typeName, fieldName string, fn FieldResolver) {
	fields, ok := e.resolvers[typeName]
	if !ok {
		fields = make(map[string]FieldResolver)
		e.resolvers[typeName] = fields
	}
	fields[fieldName] = fn
}

// Fields registers a table of resolvers for one object type whose parent value is T.
func Fields[T any](e *Executor, typeName string, fields map[string]FieldFunc[T]) {
	for name, fn := range fields {
		fieldName, fn := name, fn
		e.Register(typeName, fieldName, func(ctx context.Context, source any, args Args) (any, error) {
			obj, ok := source.(T)
			if !ok {
				return nil, apperror.Internal(fmt.Sprintf("%s.%s: unexpected parent value %T", typeName, fieldName, source))
			}
			return fn(ctx, obj, args)
		})
	}
}

// Validate reports object fields of the schema that have no resolver.
func (e *Executor) Validate() error {
	var missing []string
	for name, def := range e.schema.Types {
		if def.Kind != ast.Object || def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		for _, field := range def.Fields {
			if strings.HasPrefix(field.Name, "__") {
				continue
			}
			if e.resolver(name, field.Name) == nil {
				missing = append(missing, name+"."+field.Name)
			}
		}
	}
	for name, def := range e.schema.Types {
		if def.Kind == ast.Scalar && e.scalars[name] == nil {
			missing = append(missing, "scalar "+name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("executor: missing resolvers: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (e *Executor) resolver(typeName, fieldName string) FieldResolver {
	return e.resolvers[typeName][fieldName]
}

func (e *Executor) scalar(name string) Scalar {
	if s, ok := e.scalars[name]; ok {
		return s
	}
	return passthroughScalar{}
}

// passthroughScalar is used for scalars without a registered codec.
type passthroughScalar struct{}

func (passthroughScalar) Serialize(v any) (any, error)  { return v, nil }
func (passthroughScalar) ParseValue(v any) (any, error) { return v, nil }
func (passthroughScalar) ParseLiteral(v *ast.Value) (any, error) {
	return v.Value(nil)
}
