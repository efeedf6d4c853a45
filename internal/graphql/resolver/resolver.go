// Package resolver binds the bookshelf schema to the domain services.
package resolver

import (
	"errors"

	authorservice "bookshelf-graphql/internal/domains/author/service"
	bookservice "bookshelf-graphql/internal/domains/book/service"
	userservice "bookshelf-graphql/internal/domains/user/service"
	"bookshelf-graphql/internal/graphql/executor"
	"bookshelf-graphql/internal/graphql/scalars"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
)

type Resolver struct {
	authors authorservice.ServiceInterface
	books   bookservice.ServiceInterface
	users   userservice.ServiceInterface
}

func New(
	authors authorservice.ServiceInterface,
	books bookservice.ServiceInterface,
	users userservice.ServiceInterface,
) *Resolver {
	return &Resolver{
		authors: authors,
		books:   books,
		users:   users,
	}
}

// NewExecutor builds an executor for schema with every field of r registered.
func NewExecutor(schema *ast.Schema, r *Resolver, opts ...executor.Option) (*executor.Executor, error) {
	opts = append([]executor.Option{executor.WithScalar(scalars.DateName, scalars.Date{})}, opts...)
	exec := executor.New(schema, opts...)
	r.Register(exec)
	if err := exec.Validate(); err != nil {
		return nil, err
	}
	return exec, nil
}

func (r *Resolver) Register(exec *executor.Executor) {
	executor.Fields(exec, "Query", r.queryFields())
	executor.Fields(exec, "Mutation", r.mutationFields())
	executor.Fields(exec, "Book", r.bookFields())
	executor.Fields(exec, "Author", r.authorFields())
	executor.Fields(exec, "User", r.userFields())
}

// parseID reports false for identifiers that cannot name any record.
func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, apperror.ErrNotFound)
}
