package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
//
// Reads that find no row return a "not found" sentinel distinct from
// statement faults, so callers can always tell "no such record" apart from
// "the query failed".
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., two performance rows for the same agent and
	// period).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrConstraintViolation is returned when a statement fails a database
	// constraint, such as deleting a parent row that dependent rows still
	// reference.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDecodingFailed is returned when a stored row cannot be decoded into
	// a domain entity, typically because an enumeration column holds an
	// unrecognized code. This always propagates as a hard failure.
	ErrDecodingFailed = errors.New("row decoding failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrAgencyNotFound indicates that the requested agency does not exist.
	ErrAgencyNotFound = fmt.Errorf("%w: agency", ErrNotFound)

	// ErrPropertyNotFound indicates that the requested property does not exist.
	ErrPropertyNotFound = fmt.Errorf("%w: property", ErrNotFound)

	// ErrAgentNotFound indicates that the requested agent does not exist.
	ErrAgentNotFound = fmt.Errorf("%w: agent", ErrNotFound)

	// ErrPerformanceNotFound indicates that the requested agent performance
	// record does not exist.
	ErrPerformanceNotFound = fmt.Errorf("%w: agent performance", ErrNotFound)

	// ErrBuyerNotFound indicates that the requested buyer does not exist.
	ErrBuyerNotFound = fmt.Errorf("%w: buyer", ErrNotFound)

	// ErrFeatureNotFound indicates that the requested feature does not exist.
	ErrFeatureNotFound = fmt.Errorf("%w: feature", ErrNotFound)

	// ErrInquiryNotFound indicates that the requested inquiry does not exist.
	ErrInquiryNotFound = fmt.Errorf("%w: inquiry", ErrNotFound)

	// ErrOfferNotFound indicates that the requested offer does not exist.
	ErrOfferNotFound = fmt.Errorf("%w: offer", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "agency", "property")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
