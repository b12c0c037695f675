package store

import (
	"context"
	"database/sql"

	"github.com/alienx5499/property-portal/internal/domain"
)

// AgencyStore defines the interface for agency data persistence.
type AgencyStore interface {
	// Create saves a new agency and assigns the store-generated ID back
	// onto the entity. Returns validation errors from the domain Agency if
	// data is invalid.
	Create(ctx context.Context, agency *domain.Agency) error

	// GetByID retrieves an agency by its unique ID.
	// Returns ErrAgencyNotFound if the agency does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Agency, error)

	// GetByName retrieves an agency by its exact name.
	// Returns ErrAgencyNotFound if no agency has that name.
	GetByName(ctx context.Context, name string) (*domain.Agency, error)

	// FindAll retrieves every agency, ordered by name.
	// Returns an empty slice when the store is empty.
	FindAll(ctx context.Context) ([]*domain.Agency, error)

	// SearchByName retrieves agencies whose name contains the given term,
	// case-insensitively, ordered by name. Returns an empty slice when
	// nothing matches.
	SearchByName(ctx context.Context, name string) ([]*domain.Agency, error)

	// Update modifies an existing agency's details and touches updated_at.
	// Returns ErrAgencyNotFound if the agency does not exist.
	Update(ctx context.Context, agency *domain.Agency) error

	// Delete removes an agency by ID.
	// Returns ErrAgencyNotFound if the agency does not exist, and
	// ErrConstraintViolation if dependent agents still reference it.
	Delete(ctx context.Context, id int64) error

	// GetStatistics computes the agency rollup aggregate. An empty store
	// yields the all-zero aggregate, never an error.
	GetStatistics(ctx context.Context) (*AgencyStatistics, error)

	// WithTx returns a new AgencyStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller,
	// typically the facade service.
	WithTx(tx *sql.Tx) AgencyStore
}
