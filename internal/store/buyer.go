package store

import (
	"context"
	"database/sql"

	"github.com/alienx5499/property-portal/internal/domain"
)

// BuyerStore defines the interface for buyer data persistence.
type BuyerStore interface {
	// Create saves a new buyer and assigns the store-generated ID back onto
	// the entity.
	Create(ctx context.Context, buyer *domain.Buyer) error

	// GetByID retrieves a buyer by its unique ID.
	// Returns ErrBuyerNotFound if the buyer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Buyer, error)

	// GetByEmail retrieves a buyer by email address.
	// Returns ErrBuyerNotFound if no buyer has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Buyer, error)

	// FindAll retrieves every buyer, ordered by name.
	FindAll(ctx context.Context) ([]*domain.Buyer, error)

	// FindActive retrieves all active buyers, ordered by name.
	FindActive(ctx context.Context) ([]*domain.Buyer, error)

	// Update modifies an existing buyer's details and touches updated_at.
	// Returns ErrBuyerNotFound if the buyer does not exist.
	Update(ctx context.Context, buyer *domain.Buyer) error

	// Delete removes a buyer by ID.
	// Returns ErrBuyerNotFound if the buyer does not exist, and
	// ErrConstraintViolation if inquiries or offers still reference it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new BuyerStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) BuyerStore
}

// FeatureStore defines the interface for feature data persistence.
type FeatureStore interface {
	// Create saves a new feature and assigns the store-generated ID back
	// onto the entity.
	Create(ctx context.Context, feature *domain.Feature) error

	// GetByID retrieves a feature by its unique ID.
	// Returns ErrFeatureNotFound if the feature does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Feature, error)

	// FindAll retrieves every feature, ordered by name.
	FindAll(ctx context.Context) ([]*domain.Feature, error)

	// FindByCategory retrieves the features in a category, ordered by name.
	FindByCategory(ctx context.Context, category domain.FeatureCategory) ([]*domain.Feature, error)

	// Update modifies an existing feature's details.
	// Returns ErrFeatureNotFound if the feature does not exist.
	Update(ctx context.Context, feature *domain.Feature) error

	// Delete removes a feature by ID.
	// Returns ErrFeatureNotFound if the feature does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new FeatureStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) FeatureStore
}
