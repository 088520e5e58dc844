package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a todo error code.
type ErrorCode string

const (
	ErrConnectionFailed ErrorCode = "CONNECTION_FAILED" // backing store could not be opened
	ErrReadFailed       ErrorCode = "READ_FAILED"       // query or row decode failure
	ErrWriteFailed      ErrorCode = "WRITE_FAILED"      // insert/update/delete failure
	ErrNoSelection      ErrorCode = "NO_SELECTION"      // action needs an item under the cursor
	ErrInvalidState     ErrorCode = "INVALID_STATE"     // action not allowed in the current mode
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrInternal         ErrorCode = "INTERNAL"
)

// TodoError represents a structured error with code, message, details and cause.
type TodoError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *TodoError) Unwrap() error {
	return e.Err
}

func wrap(code ErrorCode, prefix string, err error) *TodoError {
	msg := prefix
	if err != nil {
		msg = prefix + ": " + err.Error()
	}
	return &TodoError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// NewConnectionFailed creates an error for a store that could not be opened.
func NewConnectionFailed(err error) *TodoError {
	return wrap(ErrConnectionFailed, "cannot open todo database", err)
}

// NewReadFailed creates an error for a failed query or an undecodable row.
func NewReadFailed(err error) *TodoError {
	return wrap(ErrReadFailed, "cannot read todo items", err)
}

// NewWriteFailed creates an error for a failed insert, update or delete.
func NewWriteFailed(err error) *TodoError {
	return wrap(ErrWriteFailed, "cannot write todo item", err)
}

// NewNoSelection creates an error for item actions invoked on the new entry row.
func NewNoSelection() *TodoError {
	return &TodoError{
		Code:    ErrNoSelection,
		Message: "no todo item is selected",
	}
}

// NewInvalidState creates an error for actions that the current screen mode does not allow.
func NewInvalidState(msg string) *TodoError {
	return &TodoError{
		Code:    ErrInvalidState,
		Message: msg,
	}
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *TodoError {
	return &TodoError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewNotFound creates an error for an item id that is not in the store.
func NewNotFound(identifier string) *TodoError {
	return &TodoError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("todo item not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewInternal creates an error for unexpected internal failures.
// The original error is kept in Details for logging.
func NewInternal(err error) *TodoError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &TodoError{
		Code:    ErrInternal,
		Message: "an internal error occurred",
		Details: details,
		Err:     err,
	}
}

// Is checks if err is (or wraps) a TodoError with the given code.
func Is(err error, code ErrorCode) bool {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// CodeOf returns the code of a TodoError, or ErrInternal for any other error.
func CodeOf(err error) ErrorCode {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrInternal
}
