package store

import (
	"context"
	"database/sql"

	"github.com/alienx5499/property-portal/internal/domain"
)

// PropertyStore defines the interface for property data persistence.
type PropertyStore interface {
	// Create saves a new property listing and assigns the store-generated
	// ID back onto the entity. Returns validation errors from the domain
	// Property if data is invalid.
	Create(ctx context.Context, property *domain.Property) error

	// GetByID retrieves a property by its unique ID.
	// Returns ErrPropertyNotFound if the property does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Property, error)

	// FindAll retrieves every property, newest listings first.
	FindAll(ctx context.Context) ([]*domain.Property, error)

	// FindActiveListings retrieves properties with status available,
	// newest listings first.
	FindActiveListings(ctx context.Context) ([]*domain.Property, error)

	// FindByNeighborhood retrieves properties in the exact neighborhood,
	// newest listings first.
	FindByNeighborhood(ctx context.Context, neighborhood string) ([]*domain.Property, error)

	// FindByType retrieves properties of the given type, newest listings
	// first.
	FindByType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Property, error)

	// FindByPriceRange retrieves properties whose current price lies in
	// [minPrice, maxPrice], cheapest first.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]*domain.Property, error)

	// SearchByText runs a relevance-ranked full-text match over title,
	// description, neighborhood, and region. Returns an empty slice when
	// nothing matches.
	SearchByText(ctx context.Context, searchText string) ([]*domain.Property, error)

	// Update modifies an existing property's mutable fields and touches
	// updated_at. The listing date is never rewritten.
	// Returns ErrPropertyNotFound if the property does not exist.
	Update(ctx context.Context, property *domain.Property) error

	// UpdateStatus changes only the property's status. The sold date is not
	// derived here; callers set it explicitly through Update when a sale
	// completes. Returns ErrPropertyNotFound if the property does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error

	// UpdatePrice changes only the property's current price.
	// Returns ErrPropertyNotFound if the property does not exist.
	UpdatePrice(ctx context.Context, id int64, newPrice int64) error

	// Delete removes a property by ID.
	// Returns ErrPropertyNotFound if the property does not exist, and
	// ErrConstraintViolation if inquiries or offers still reference it.
	Delete(ctx context.Context, id int64) error

	// GetStatistics computes the property rollup aggregate (per-status
	// counts, min/avg/max price). An empty store yields the all-zero
	// aggregate, never an error.
	GetStatistics(ctx context.Context) (*PropertyStatistics, error)

	// WithTx returns a new PropertyStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) PropertyStore
}
