package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is the application error type. Every error that crosses the HTTP
// boundary carries a machine-readable code, an HTTP status and an optional
// details map; the Fiber error handler serializes them uniformly.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Status  int            `json:"status_code"`
	Details map[string]any `json:"details"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithCause attaches an underlying error for logging without leaking it to
// the client.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

func Validation(message string, details map[string]any) *Error {
	return &Error{Code: "VALIDATION_ERROR", Message: message, Status: fiber.StatusBadRequest, Details: details}
}

func NotFound(resource, id string) *Error {
	msg := resource + " not found"
	if id != "" {
		msg = fmt.Sprintf("%s with ID '%s' not found", resource, id)
	}
	return &Error{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  fiber.StatusNotFound,
		Details: map[string]any{"resource": resource, "resource_id": id},
	}
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{Code: "UNAUTHORIZED", Message: message, Status: fiber.StatusUnauthorized}
}

func Conflict(message string, details map[string]any) *Error {
	return &Error{Code: "CONFLICT", Message: message, Status: fiber.StatusConflict, Details: details}
}

func Internal(message string, details map[string]any) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return &Error{Code: "INTERNAL_SERVER_ERROR", Message: message, Status: fiber.StatusInternalServerError, Details: details}
}

func Unavailable(message string) *Error {
	if message == "" {
		message = "Service unavailable"
	}
	return &Error{Code: "SERVICE_UNAVAILABLE", Message: message, Status: fiber.StatusServiceUnavailable}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
