// Package apperror provides the coded domain errors surfaced through the GraphQL gateway.
//
// Services return *Error values (or wrap them with %w); the gateway reads the
// Code and reports it under extensions.code of the matching errors[] entry.
//
//	if errors.Is(err, apperror.ErrNotFound) {
//	    return nil, nil
//	}
package apperror

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error kind.
type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeValidationFailure Code = "VALIDATION_FAILURE"
	CodeUnimplemented     Code = "UNIMPLEMENTED"
	CodeInternal          Code = "INTERNAL"
)

// Error is a domain error with a code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: err}
}

// WithMessage returns a copy of e with a different message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg, cause: e.cause}
}

// Sentinel errors for use with errors.Is.
var (
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidationFailure = &Error{Code: CodeValidationFailure, Message: "validation failure"}
	ErrUnimplemented     = &Error{Code: CodeUnimplemented, Message: "not implemented"}
	ErrInternal          = &Error{Code: CodeInternal, Message: "internal error"}
)

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidationFailure, Message: msg}
}

func Unimplemented(msg string) *Error {
	return &Error{Code: CodeUnimplemented, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// CodeOf returns the Code carried by err, or CodeInternal for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Prefix prepends prefix to the message of err while keeping its code.
// Errors that are not *Error become INTERNAL errors wrapping err.
func Prefix(err error, prefix string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Code: e.Code, Message: prefix + ": " + e.Message, cause: e.cause}
	}
	return Internal(prefix).WithCause(err)
}
