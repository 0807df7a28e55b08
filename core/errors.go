package core

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeConflict   ErrorCode = "CONFLICT"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeStore      ErrorCode = "STORE_ERROR"
)

// CodedError carries a machine-readable code alongside the human message so
// the HTTP layer can map failures to statuses without string matching.
type CodedError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...any) *CodedError {
	return &CodedError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) *CodedError {
	return &CodedError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) *CodedError {
	return &CodedError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewStoreError(op string, err error) *CodedError {
	return &CodedError{Code: CodeStore, Message: op, Err: err}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var ce *CodedError
	return errors.As(err, &ce) && ce.Code == code
}
