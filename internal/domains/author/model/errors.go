package model

import "bookshelf-graphql/internal/shared/apperror"

var (
	ErrAuthorNotFound = apperror.NotFound("Author not found")
	ErrInvalidAuthor  = apperror.Validation("author input is invalid")
)
