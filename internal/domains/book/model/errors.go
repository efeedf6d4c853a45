package model

import "bookshelf-graphql/internal/shared/apperror"

var (
	ErrBookNotFound   = apperror.NotFound("Book not found")
	ErrAuthorNotFound = apperror.NotFound("could not find the author specified")
)
