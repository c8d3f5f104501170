package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Submission pipeline kinds
	ErrCodeInvalidInput          ErrorCode = "INVALID_INPUT"
	ErrCodeBotDetected           ErrorCode = "BOT_DETECTED"
	ErrCodeRateLimited           ErrorCode = "RATE_LIMITED"
	ErrCodeStorageUnavailable    ErrorCode = "STORAGE_UNAVAILABLE"
	ErrCodeStorageFailure        ErrorCode = "STORAGE_FAILURE"
	ErrCodeDuplicateSubscription ErrorCode = "DUPLICATE_SUBSCRIPTION"
	ErrCodeNotificationFailed    ErrorCode = "NOTIFICATION_FAILED"
)

// AppError represents an application error. Message is safe to show to end
// users; Err carries the internal detail and is only ever logged.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrCodeInternalError when there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// MessageOf returns the user-facing message of the first AppError in err's
// chain, falling back to the given default.
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

func hasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsInvalidInput checks if error is InvalidInput
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrCodeInvalidInput)
}

// IsBotDetected checks if error is BotDetected
func IsBotDetected(err error) bool {
	return hasCode(err, ErrCodeBotDetected)
}

// IsRateLimited checks if error is RateLimited
func IsRateLimited(err error) bool {
	return hasCode(err, ErrCodeRateLimited)
}

// IsStorageUnavailable checks if error is StorageUnavailable
func IsStorageUnavailable(err error) bool {
	return hasCode(err, ErrCodeStorageUnavailable)
}

// IsDuplicateSubscription checks if error is DuplicateSubscription
func IsDuplicateSubscription(err error) bool {
	return hasCode(err, ErrCodeDuplicateSubscription)
}
