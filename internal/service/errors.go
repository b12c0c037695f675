package service

import "fmt"

// PortalServiceError is a custom error type for portal service errors.
type PortalServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for PortalServiceError.
func (e *PortalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("portal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("portal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PortalServiceError) Unwrap() error {
	return e.Err
}

// NewPortalServiceError creates a new PortalServiceError.
func NewPortalServiceError(operation, message string, err error) *PortalServiceError {
	return &PortalServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
