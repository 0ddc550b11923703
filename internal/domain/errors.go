package domain

import "fmt"

// AppError is the base domain error type.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Standard domain error constructors.

// ErrValidation rejects malformed input before any state mutation.
func ErrValidation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Status: 400}
}

// ErrTransaction signals an external ledger call failure. Engine state is
// left untouched and the action is not recorded; the caller retries the
// whole user action from scratch.
func ErrTransaction(msg string, cause error) *AppError {
	return &AppError{Code: "TRANSACTION_ERROR", Message: msg, Status: 502, Cause: cause}
}

// ErrInvariant signals a catalog authoring bug or impossible state.
// Unreachable in correct configuration; never swallowed.
func ErrInvariant(msg string) *AppError {
	return &AppError{Code: "INVARIANT_VIOLATION", Message: msg, Status: 500}
}

func ErrNotFound(entity, id string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: fmt.Sprintf("%s %s not found", entity, id), Status: 404}
}

func ErrUnauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Status: 401}
}

func ErrInternal(msg string, cause error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: msg, Status: 500, Cause: cause}
}
