package model

import "bookshelf-graphql/internal/shared/apperror"

var (
	ErrUserNotFound       = apperror.NotFound("could not find user by the provided id")
	ErrRegisterNotEnabled = apperror.Unimplemented("registerUser is not implemented")
)
