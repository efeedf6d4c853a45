package executor

import (
	"context"
	"errors"

	"bookshelf-graphql/internal/shared/apperror"

	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// ErrorPresenter turns a resolver error into the errors[] entry reported to the client.
// Path and Locations are filled in by the executor.
type ErrorPresenter func(ctx context.Context, err error) *gqlerror.Error

// DefaultErrorPresenter reports the error message and its code under extensions.code.
// INTERNAL errors are logged and their cause is not exposed.
func DefaultErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	code := apperror.CodeOf(err)
	message := err.Error()

	if code == apperror.CodeInternal {
		log.Ctx(ctx).Error().Err(err).Msg("graphql resolver failed")

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			message = appErr.Message
		} else {
			message = "internal server error"
		}
	}

	return &gqlerror.Error{
		Err:        err,
		Message:    message,
		Extensions: map[string]any{"code": string(code)},
	}
}

func (ec *execContext) fieldError(ctx context.Context, err error, field *ast.Field, path ast.Path) *gqlerror.Error {
	gqlErr := ec.exec.presenter(ctx, err)
	gqlErr.Path = path
	if field.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: field.Position.Line, Column: field.Position.Column}}
	}
	return gqlErr
}
