package executor

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"sync"
	"time"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"golang.org/x/sync/errgroup"
)

type execContext struct {
	exec *Executor
	doc  *ast.QueryDocument
	vars map[string]any
}

// Execute prepares and runs one request.
func (e *Executor) Execute(ctx context.Context, params Params) *Response {
	op, errs := e.Prepare(params)
	if len(errs) > 0 {
		return &Response{Errors: errs}
	}
	return e.Run(ctx, op)
}

// Run executes a prepared operation. Query fields are resolved concurrently;
// mutation root fields run one after another in document order.
func (e *Executor) Run(ctx context.Context, op *PreparedOperation) *Response {
	start := time.Now()
	ec := &execContext{
		exec: e,
		doc:  op.document,
		vars: op.variables,
	}

	serial := op.Type() == ast.Mutation
	data, errs, _ := ec.executeSelectionSet(ctx, op.rootType, op.operation.SelectionSet, Root{}, nil, serial)

	log.Ctx(ctx).Debug().
		Str("operation", op.Name()).
		Str("type", string(op.Type())).
		Dur("duration", time.Since(start)).
		Int("errors", len(errs)).
		Msg("graphql operation executed")

	return &Response{Data: data, Errors: errs, Executed: true}
}

// executeSelectionSet returns a nil object and bubble=true when a non-null
// child field resolved to null.
func (ec *execContext) executeSelectionSet(
	ctx context.Context,
	def *ast.Definition,
	set ast.SelectionSet,
	source any,
	path ast.Path,
	serial bool,
) (*Object, gqlerror.List, bool) {
	grouped, err := ec.collectFields(def, set)
	if err != nil {
		return nil, gqlerror.List{ec.pathError(err, path)}, true
	}
	return ec.executeFields(ctx, def, grouped, source, path, serial)
}

func (ec *execContext) executeFields(
	ctx context.Context,
	def *ast.Definition,
	grouped *groupedFields,
	source any,
	path ast.Path,
	serial bool,
) (*Object, gqlerror.List, bool) {
	obj := newObject(grouped.keys())
	fieldErrs := make([]gqlerror.List, len(grouped.groups))
	bubbled := make([]bool, len(grouped.groups))

	run := func(i int) {
		group := grouped.groups[i]
		obj.values[i], fieldErrs[i], bubbled[i] = ec.executeField(ctx, def, source, group, appendPath(path, ast.PathName(group.key)))
	}

	if serial || len(grouped.groups) == 1 || ec.exec.maxConcurrency == 1 {
		for i := range grouped.groups {
			run(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(ec.exec.maxConcurrency)
		for i := range grouped.groups {
			i := i // per-iteration copy (pre-Go 1.22 loop semantics)
			g.Go(func() error {
				run(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var errs gqlerror.List
	bubble := false
	for i := range grouped.groups {
		errs = append(errs, fieldErrs[i]...)
		bubble = bubble || bubbled[i]
	}
	if bubble {
		return nil, errs, true
	}
	return obj, errs, false
}

func (ec *execContext) executeField(
	ctx context.Context,
	parent *ast.Definition,
	source any,
	group *fieldGroup,
	path ast.Path,
) (any, gqlerror.List, bool) {
	field := group.fields[0]

	switch field.Name {
	case "__typename":
		return parent.Name, nil, false
	case "__schema", "__type":
		err := apperror.Unimplemented("introspection is not supported")
		return nil, gqlerror.List{ec.fieldError(ctx, err, field, path)}, field.Definition != nil && field.Definition.Type.NonNull
	}

	if field.Definition == nil {
		err := apperror.Internal(fmt.Sprintf("unknown field %s.%s", parent.Name, field.Name))
		return nil, gqlerror.List{ec.fieldError(ctx, err, field, path)}, false
	}
	fieldType := field.Definition.Type

	fail := func(err error) (any, gqlerror.List, bool) {
		return nil, gqlerror.List{ec.fieldError(ctx, err, field, path)}, fieldType.NonNull
	}

	resolve := ec.exec.resolver(parent.Name, field.Name)
	if resolve == nil {
		return fail(apperror.Internal(fmt.Sprintf("no resolver for %s.%s", parent.Name, field.Name)))
	}

	args, err := ec.coerceArguments(field.Definition.Arguments, field.Arguments)
	if err != nil {
		return fail(err)
	}

	value, err := ec.callResolver(ctx, resolve, source, args)
	if err != nil {
		return fail(err)
	}

	return ec.completeValue(ctx, fieldType, group.fields, value, path)
}

func (ec *execContext) callResolver(ctx context.Context, fn FieldResolver, source any, args Args) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Ctx(ctx).Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("graphql resolver panicked")
			err = apperror.Internal("internal server error").WithCause(fmt.Errorf("panic: %v", r))
		}
	}()
	return fn(ctx, source, args)
}

// completeValue shapes a resolved value according to typ. The returned bool
// tells the caller that a null must propagate to the parent.
func (ec *execContext) completeValue(
	ctx context.Context,
	typ *ast.Type,
	fields []*ast.Field,
	value any,
	path ast.Path,
) (any, gqlerror.List, bool) {
	if typ.NonNull {
		nullable := *typ
		nullable.NonNull = false
		v, errs, bubble := ec.completeValue(ctx, &nullable, fields, value, path)
		// A null caused by an already reported error propagates without a second error.
		if bubble || (v == nil && len(errs) > 0) {
			return nil, errs, true
		}
		if v == nil {
			err := apperror.Internal(fmt.Sprintf("cannot return null for non-nullable field %s", typ.String()))
			return nil, append(errs, ec.fieldError(ctx, err, fields[0], path)), true
		}
		return v, errs, false
	}

	if isNil(value) {
		return nil, nil, false
	}

	if typ.Elem != nil {
		return ec.completeList(ctx, typ.Elem, fields, value, path)
	}

	def := ec.exec.schema.Types[typ.NamedType]
	if def == nil {
		err := apperror.Internal("unknown type " + typ.NamedType)
		return nil, gqlerror.List{ec.fieldError(ctx, err, fields[0], path)}, false
	}

	switch def.Kind {
	case ast.Scalar:
		v, err := ec.exec.scalar(def.Name).Serialize(value)
		if err != nil {
			return nil, gqlerror.List{ec.fieldError(ctx, err, fields[0], path)}, false
		}
		return v, nil, false

	case ast.Enum:
		return fmt.Sprint(value), nil, false

	case ast.Object:
		grouped, err := ec.collectSubfields(def, fields)
		if err != nil {
			return nil, gqlerror.List{ec.fieldError(ctx, err, fields[0], path)}, false
		}
		obj, errs, bubble := ec.executeFields(ctx, def, grouped, value, path, false)
		if bubble {
			return nil, errs, false
		}
		return obj, errs, false
	}

	err := apperror.Internal(fmt.Sprintf("abstract type %s is not supported", def.Name))
	return nil, gqlerror.List{ec.fieldError(ctx, err, fields[0], path)}, false
}

func (ec *execContext) completeList(
	ctx context.Context,
	elem *ast.Type,
	fields []*ast.Field,
	value any,
	path ast.Path,
) (any, gqlerror.List, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		err := apperror.Internal(fmt.Sprintf("expected a list, got %T", value))
		return nil, gqlerror.List{ec.fieldError(ctx, err, fields[0], path)}, false
	}

	n := rv.Len()
	items := make([]any, n)
	itemErrs := make([]gqlerror.List, n)
	var (
		mu     sync.Mutex
		bubble bool
	)
	complete := func(i int) {
		v, errs, b := ec.completeValue(ctx, elem, fields, rv.Index(i).Interface(), appendPath(path, ast.PathIndex(i)))
		items[i], itemErrs[i] = v, errs
		if b {
			mu.Lock()
			bubble = true
			mu.Unlock()
		}
	}

	if n <= 1 || ec.exec.maxConcurrency == 1 {
		for i := 0; i < n; i++ {
			complete(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(ec.exec.maxConcurrency)
		for i := 0; i < n; i++ {
			i := i // per-iteration copy (pre-Go 1.22 loop semantics)
			g.Go(func() error {
				complete(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	var errs gqlerror.List
	for _, e := range itemErrs {
		errs = append(errs, e...)
	}
	// A null in a list of non-null items nulls the whole list.
	if bubble {
		return nil, errs, false
	}
	return items, errs, false
}

func (ec *execContext) pathError(err error, path ast.Path) *gqlerror.Error {
	gqlErr := ec.exec.presenter(context.Background(), apperror.Validation(err.Error()))
	gqlErr.Path = path
	return gqlErr
}

// appendPath copies path so sibling fields never share a backing array.
func appendPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
