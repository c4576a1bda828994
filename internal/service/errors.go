package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidPayload  = "invalid_payload"
	ErrCodeAccountNotFound = "account_not_found"
	ErrCodeInternalError   = "internal_error"
)

func accountNotFound(id int64, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeAccountNotFound,
		Message: fmt.Sprintf("Account with id [%d] could not be found.", id),
		Err:     err,
	}
}

func internalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}
