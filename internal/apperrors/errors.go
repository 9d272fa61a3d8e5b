// Package apperrors defines the error taxonomy the HTTP layer maps to status
// codes: validation failures (400), missing admin capability (403), unknown
// ids (404), and upstream catalog failures (the remote status is passed
// through verbatim).
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ValidationError struct {
	msg string
}

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

type ForbiddenError struct {
	msg string
}

func Forbidden(msg string) *ForbiddenError {
	return &ForbiddenError{msg: msg}
}

func (e *ForbiddenError) Error() string { return e.msg }

type NotFoundError struct {
	msg string
}

func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.msg }

// UpstreamError carries the status code the external catalog API answered
// with. The ingestion endpoint responds with that exact code.
type UpstreamError struct {
	Status int
	msg    string
}

func Upstream(status int, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Status: status, msg: fmt.Sprintf(format, args...)}
}

func (e *UpstreamError) Error() string { return e.msg }

// HTTPStatus resolves an error to the response status code. Unclassified
// errors are internal server errors.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		forbidden  *ForbiddenError
		notFound   *NotFoundError
		upstream   *UpstreamError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return upstream.Status
	default:
		return http.StatusInternalServerError
	}
}
