package service

import (
	"database/sql"
	"log/slog"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/store"
)

// Stores bundles the persistence interfaces the portal service composes.
// Every field must be non-nil.
type Stores struct {
	Agencies    store.AgencyStore
	Properties  store.PropertyStore
	Agents      store.AgentStore
	Performance store.AgentPerformanceStore
	Buyers      store.BuyerStore
	Features    store.FeatureStore
	Inquiries   store.InquiryStore
	Offers      store.OfferStore
}

// PortalService is the facade over the portal's stores. It validates input
// before delegating to the stores and computes the derived analytics that
// are not expressed as single store queries.
type PortalService struct {
	db     *sql.DB
	stores Stores
	logger *slog.Logger
}

// NewPortalService creates a new PortalService. The database handle is used
// only for transactional read-modify-write operations; all other calls go
// straight through the store interfaces so tests can substitute fakes.
// It returns an error if any required dependency is nil.
func NewPortalService(db *sql.DB, stores Stores, logger *slog.Logger) (*PortalService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if stores.Agencies == nil {
		return nil, domain.NewValidationError("stores.Agencies", "cannot be nil", domain.ErrValidation)
	}
	if stores.Properties == nil {
		return nil, domain.NewValidationError("stores.Properties", "cannot be nil", domain.ErrValidation)
	}
	if stores.Agents == nil {
		return nil, domain.NewValidationError("stores.Agents", "cannot be nil", domain.ErrValidation)
	}
	if stores.Performance == nil {
		return nil, domain.NewValidationError("stores.Performance", "cannot be nil", domain.ErrValidation)
	}
	if stores.Buyers == nil {
		return nil, domain.NewValidationError("stores.Buyers", "cannot be nil", domain.ErrValidation)
	}
	if stores.Features == nil {
		return nil, domain.NewValidationError("stores.Features", "cannot be nil", domain.ErrValidation)
	}
	if stores.Inquiries == nil {
		return nil, domain.NewValidationError("stores.Inquiries", "cannot be nil", domain.ErrValidation)
	}
	if stores.Offers == nil {
		return nil, domain.NewValidationError("stores.Offers", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PortalService{
		db:     db,
		stores: stores,
		logger: logger.With(slog.String("component", "portal_service")),
	}, nil
}
