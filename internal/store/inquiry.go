package store

import (
	"context"
	"database/sql"

	"github.com/alienx5499/property-portal/internal/domain"
)

// InquiryStore defines the interface for inquiry data persistence.
type InquiryStore interface {
	// Create saves a new inquiry and assigns the store-generated ID back
	// onto the entity. Returns ErrInvalidEntity if the agent, buyer, or
	// property does not exist.
	Create(ctx context.Context, inquiry *domain.Inquiry) error

	// GetByID retrieves an inquiry by its unique ID.
	// Returns ErrInquiryNotFound if the inquiry does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Inquiry, error)

	// FindAll retrieves every inquiry, newest first.
	FindAll(ctx context.Context) ([]*domain.Inquiry, error)

	// FindByProperty retrieves the inquiries for a property, newest first.
	FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Inquiry, error)

	// FindByAgent retrieves the inquiries routed to an agent, newest first.
	FindByAgent(ctx context.Context, agentID int64) ([]*domain.Inquiry, error)

	// FindByStatus retrieves the inquiries in the given status, newest
	// first.
	FindByStatus(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error)

	// MarkResponded moves the inquiry to status responded, stamps
	// responded_at, and records the response time in minutes measured from
	// created_at. Returns ErrInquiryNotFound if the inquiry does not exist.
	MarkResponded(ctx context.Context, id int64) error

	// Close moves the inquiry to status closed and stamps closed_at.
	// Returns ErrInquiryNotFound if the inquiry does not exist.
	Close(ctx context.Context, id int64) error

	// Update persists only message, status, inquiry type, and priority, and
	// touches updated_at. The response and close timestamps are owned by
	// MarkResponded and Close; a status written through Update never stamps
	// them. Returns ErrInquiryNotFound if the inquiry does not exist.
	Update(ctx context.Context, inquiry *domain.Inquiry) error

	// Delete removes an inquiry by ID.
	// Returns ErrInquiryNotFound if the inquiry does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new InquiryStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) InquiryStore
}

// OfferStore defines the interface for offer data persistence.
type OfferStore interface {
	// Create saves a new offer and assigns the store-generated ID back onto
	// the entity. Returns ErrInvalidEntity if the agent, buyer, or property
	// does not exist.
	Create(ctx context.Context, offer *domain.Offer) error

	// GetByID retrieves an offer by its unique ID.
	// Returns ErrOfferNotFound if the offer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)

	// FindByProperty retrieves the offers on a property, newest first.
	FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Offer, error)

	// FindByBuyer retrieves the offers placed by a buyer, newest first.
	FindByBuyer(ctx context.Context, buyerID int64) ([]*domain.Offer, error)

	// FindByStatus retrieves the offers in the given status, newest first.
	FindByStatus(ctx context.Context, status domain.OfferStatus) ([]*domain.Offer, error)

	// UpdateStatus changes only the offer's status and stamps the response
	// date. Returns ErrOfferNotFound if the offer does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error

	// Update modifies an existing offer's mutable fields and touches
	// updated_at. Returns ErrOfferNotFound if the offer does not exist.
	Update(ctx context.Context, offer *domain.Offer) error

	// Delete removes an offer by ID.
	// Returns ErrOfferNotFound if the offer does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new OfferStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) OfferStore
}
