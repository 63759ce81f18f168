package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a recoverable failure returned to callers.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	ErrCodeRegistrationClosed ErrorCode = "REGISTRATION_CLOSED"
	ErrCodeIneligible         ErrorCode = "INELIGIBLE"
	ErrCodeDuplicateEntry     ErrorCode = "DUPLICATE_ENTRY"
	ErrCodeWaitlistFull       ErrorCode = "WAITLIST_FULL"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeInvalidState       ErrorCode = "INVALID_STATE"
	ErrCodeDeadlineExpired    ErrorCode = "DEADLINE_EXPIRED"
	ErrCodeCapacityExceeded   ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeBusy               ErrorCode = "BUSY"
	ErrCodeInvalidDrawCount   ErrorCode = "INVALID_DRAW_COUNT"
)

// AppError is the typed error carried from the service layer to delivery.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key/value pair for the JSON error body.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the original error as the cause so errors.Is/As still work.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf reports the error code of err, or ErrCodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HTTPStatus maps an error code to the status the delivery layer responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidDrawCount:
		return http.StatusBadRequest
	case ErrCodeRegistrationClosed, ErrCodeIneligible:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateEntry, ErrCodeWaitlistFull, ErrCodeInvalidState:
		return http.StatusConflict
	case ErrCodeDeadlineExpired:
		return http.StatusGone
	case ErrCodeBusy:
		return http.StatusServiceUnavailable
	case ErrCodeCapacityExceeded, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
