// Package dterr defines the errors the HTTP API renders as
// {"code": ..., "message": ..., ...extras}.
package dterr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeUnknown        = "UNKNOWN_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

// Error is an API error. Values are never mutated; Msg and With return copies.
type Error struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     map[string]any
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

// With returns a copy of e rendering value under key next to code and message.
func (e Error) With(key string, value any) *Error {
	extras := make(map[string]any, len(e.Extras)+1)
	for k, v := range e.Extras {
		extras[k] = v
	}
	extras[key] = value
	e.Extras = extras
	return &e
}

func NewInvalidViolations(violations any) *Error {
	return ErrInvalidReq.With("violations", violations)
}

// From resolves the Error to render for err. Fiber errors keep their status
// code; anything else is an internal error.
func From(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return New(fe.Code, CodeUnknown, fe.Message)
	}

	return ErrInternalError
}

// Body is the JSON document e is rendered as. Extras cannot shadow code or
// message.
func (e *Error) Body() map[string]any {
	body := make(map[string]any, len(e.Extras)+2)
	for k, v := range e.Extras {
		body[k] = v
	}
	body["code"] = e.ErrorCode
	body["message"] = e.Message
	return body
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
