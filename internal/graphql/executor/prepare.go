package executor

import (
	"errors"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// Params is one GraphQL request.
type Params struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// PreparedOperation is a parsed, validated operation with coerced variables.
// It is bound to the Executor that prepared it.
type PreparedOperation struct {
	document  *ast.QueryDocument
	operation *ast.OperationDefinition
	rootType  *ast.Definition
	variables map[string]any
}

func (p *PreparedOperation) Type() ast.Operation {
	return p.operation.Operation
}

func (p *PreparedOperation) Name() string {
	return p.operation.Name
}

// Prepare parses and validates the document, selects the operation and coerces
// its variables. All returned errors carry the VALIDATION_FAILURE code.
func (e *Executor) Prepare(params Params) (*PreparedOperation, gqlerror.List) {
	if params.Query == "" {
		return nil, requestErrors(gqlerror.Errorf("must provide a query string"))
	}

	doc, errs := gqlparser.LoadQuery(e.schema, params.Query)
	if len(errs) > 0 {
		return nil, requestErrors(errs...)
	}

	op := doc.Operations.ForName(params.OperationName)
	if op == nil {
		if params.OperationName != "" {
			return nil, requestErrors(gqlerror.Errorf("unknown operation named %q", params.OperationName))
		}
		return nil, requestErrors(gqlerror.Errorf("must provide operation name if query contains multiple operations"))
	}

	var root *ast.Definition
	switch op.Operation {
	case ast.Query:
		root = e.schema.Query
	case ast.Mutation:
		root = e.schema.Mutation
	case ast.Subscription:
		root = e.schema.Subscription
	}
	if root == nil || op.Operation == ast.Subscription {
		return nil, requestErrors(gqlerror.Errorf("%s operations are not supported", op.Operation))
	}

	vars, err := validator.VariableValues(e.schema, op, params.Variables)
	if err != nil {
		var gqlErr *gqlerror.Error
		if errors.As(err, &gqlErr) {
			return nil, requestErrors(gqlErr)
		}
		return nil, requestErrors(gqlerror.Errorf("%s", err.Error()))
	}

	return &PreparedOperation{
		document:  doc,
		operation: op,
		rootType:  root,
		variables: vars,
	}, nil
}

func requestErrors(errs ...*gqlerror.Error) gqlerror.List {
	list := make(gqlerror.List, 0, len(errs))
	for _, err := range errs {
		if err.Extensions == nil {
			err.Extensions = map[string]any{}
		}
		err.Extensions["code"] = string(apperror.CodeValidationFailure)
		list = append(list, err)
	}
	return list
}
