package apperror

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest marks a caller-data problem; the message is surfaced verbatim.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Conflict marks a business-rule uniqueness violation.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// Unavailable marks a store connectivity failure.
func Unavailable(message string) *AppError {
	return New(http.StatusServiceUnavailable, message, nil)
}

// Persistence wraps any other store failure, keeping the original message.
func Persistence(err error) *AppError {
	return New(http.StatusInternalServerError, err.Error(), err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsNotFound(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return hasCode(err, http.StatusConflict)
}

func IsUnavailable(err error) bool {
	return hasCode(err, http.StatusServiceUnavailable)
}
