// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type every service returns for expected failures.
// Handlers dispatch on Code/HTTPCode instead of matching message strings.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func Internal(err error) *AppError {
	return &AppError{
		Code:     CodeInternalError,
		Message:  "internal server error",
		Err:      err,
		HTTPCode: http.StatusInternalServerError,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, resource+" not found", http.StatusNotFound)
}

func AlreadyExists(message string) *AppError {
	return New(CodeAlreadyExists, message, http.StatusConflict)
}

func Validation(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation failed", http.StatusBadRequest).WithDetails(details)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// InvalidState reports a workflow transition attempted from a status that
// does not satisfy the guard. The record's actual status travels in Details
// so the caller can resynchronize.
func InvalidState(message string, currentStatus string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict).
		WithDetails(map[string]string{"current_status": currentStatus})
}
