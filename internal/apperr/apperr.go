// Package apperr defines the application error taxonomy. Every failure a
// request can hit is translated into one of these before it reaches the HTTP
// boundary.
package apperr

import (
	"fmt"
	"net/http"
)

// Error codes.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeReferenceNotFound  = "REFERENCE_NOT_FOUND"
	CodeAccessDenied       = "ACCESS_DENIED"
	CodeLastAdminProtected = "LAST_ADMIN_PROTECTED"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_ERROR"
)

// Violation describes a single field-level validation failure. Messages are
// part of the wire contract and surfaced verbatim.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a structured application error with an HTTP status.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Status     int         `json:"-"`
	Violations []Violation `json:"violations,omitempty"`
	Err        error       `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationFailed wraps one or more field violations into a 400.
func ValidationFailed(violations []Violation) *Error {
	return &Error{
		Code:       CodeValidationFailed,
		Message:    "Validation failed",
		Status:     http.StatusBadRequest,
		Violations: violations,
	}
}

// ReferenceNotFound reports that a related entity id in a write payload does
// not resolve. kind is the entity kind, e.g. "Editor" or "Category".
func ReferenceNotFound(kind string) *Error {
	return &Error{
		Code:    CodeReferenceNotFound,
		Message: kind + " not found",
		Status:  http.StatusNotFound,
	}
}

// AccessDenied reports a 403 with the given message.
func AccessDenied(message string) *Error {
	return &Error{
		Code:    CodeAccessDenied,
		Message: message,
		Status:  http.StatusForbidden,
	}
}

// LastAdminProtected rejects a delete that would remove the last admin.
func LastAdminProtected() *Error {
	return &Error{
		Code:    CodeLastAdminProtected,
		Message: "Cannot delete the last admin user",
		Status:  http.StatusBadRequest,
	}
}

// NotFound reports that the targeted entity does not exist.
func NotFound(kind string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: kind + " not found",
		Status:  http.StatusNotFound,
	}
}

// InvalidCredentials reports a failed login.
func InvalidCredentials() *Error {
	return &Error{
		Code:    CodeInvalidCredentials,
		Message: "Invalid credentials",
		Status:  http.StatusUnauthorized,
	}
}

// Internal wraps an unexpected error from the persistence or mail layer.
func Internal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Message: "An internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
