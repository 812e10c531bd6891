package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a request-scoped failure. Every failure raised by the
// service layer carries exactly one kind and propagates unchanged to the
// HTTP boundary, where it maps to a status code.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func BadRequest(msg string) *AppError   { return &AppError{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) *AppError { return &AppError{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *AppError    { return &AppError{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *AppError     { return &AppError{Kind: KindNotFound, Message: msg} }

// HTTPStatus maps an error to its response status. Anything that is not an
// AppError is an internal failure.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
