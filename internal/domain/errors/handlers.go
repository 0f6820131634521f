package errors

import (
	"errors"
)

// AsAppError extracts an AppError from anywhere in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// DatabaseError wraps a low-level database failure so the client sees a
// generic message while the cause stays attached for logging.
func DatabaseError(cause error) *BaseError {
	return ErrDatabaseExecute.WithCause(cause)
}

// ValidationError attaches per-field messages to the validation error.
func ValidationError(fields map[string]any) *BaseError {
	return ErrValidationFailed.WithDetails(fields)
}
