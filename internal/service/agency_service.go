package service

import (
	"context"
	"log/slog"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// RegisterAgency validates the agency fields and saves a new agency.
// The store-assigned ID is set on the returned entity.
func (s *PortalService) RegisterAgency(ctx context.Context, name, address, phone string) (*domain.Agency, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	agency, err := domain.NewAgency(name, address, phone)
	if err != nil {
		log.Warn("agency registration rejected",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewPortalServiceError("register_agency", "invalid agency", err)
	}

	if err := s.stores.Agencies.Create(ctx, agency); err != nil {
		log.Error("failed to save agency",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewPortalServiceError("register_agency", "failed to save agency", err)
	}

	log.Info("agency registered",
		slog.Int64("agency_id", agency.ID),
		slog.String("name", agency.Name))
	return agency, nil
}

// GetAgencyByID retrieves a single agency.
func (s *PortalService) GetAgencyByID(ctx context.Context, id int64) (*domain.Agency, error) {
	agency, err := s.stores.Agencies.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_agency", "agency not found", err)
		}
		return nil, NewPortalServiceError("get_agency", "failed to retrieve agency", err)
	}
	return agency, nil
}

// GetAgencyByName retrieves the agency with the exact given name.
func (s *PortalService) GetAgencyByName(ctx context.Context, name string) (*domain.Agency, error) {
	agency, err := s.stores.Agencies.GetByName(ctx, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_agency_by_name", "agency not found", err)
		}
		return nil, NewPortalServiceError("get_agency_by_name", "failed to retrieve agency", err)
	}
	return agency, nil
}

// GetAllAgencies lists every agency ordered by name.
func (s *PortalService) GetAllAgencies(ctx context.Context) ([]*domain.Agency, error) {
	agencies, err := s.stores.Agencies.FindAll(ctx)
	if err != nil {
		return nil, NewPortalServiceError("list_agencies", "failed to list agencies", err)
	}
	return agencies, nil
}

// SearchAgenciesByName finds agencies whose name contains the given
// fragment, case-insensitively.
func (s *PortalService) SearchAgenciesByName(ctx context.Context, name string) ([]*domain.Agency, error) {
	agencies, err := s.stores.Agencies.SearchByName(ctx, name)
	if err != nil {
		return nil, NewPortalServiceError("search_agencies", "failed to search agencies", err)
	}
	return agencies, nil
}

// UpdateAgency validates and persists changes to an existing agency.
func (s *PortalService) UpdateAgency(ctx context.Context, agency *domain.Agency) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := agency.Validate(); err != nil {
		log.Warn("agency update rejected",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", agency.ID))
		return NewPortalServiceError("update_agency", "invalid agency", err)
	}

	if err := s.stores.Agencies.Update(ctx, agency); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("update_agency", "agency not found", err)
		}
		return NewPortalServiceError("update_agency", "failed to update agency", err)
	}
	return nil
}

// DeleteAgency removes an agency. Deleting an agency that still has agents
// fails with store.ErrConstraintViolation wrapped in the service error.
func (s *PortalService) DeleteAgency(ctx context.Context, id int64) error {
	if err := s.stores.Agencies.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("delete_agency", "agency not found", err)
		}
		return NewPortalServiceError("delete_agency", "failed to delete agency", err)
	}
	return nil
}

// GetAgencyStatistics returns the portal-wide agency rollup. An empty store
// yields the all-zero aggregate.
func (s *PortalService) GetAgencyStatistics(ctx context.Context) (*store.AgencyStatistics, error) {
	stats, err := s.stores.Agencies.GetStatistics(ctx)
	if err != nil {
		return nil, NewPortalServiceError("agency_statistics", "failed to compute statistics", err)
	}
	return stats, nil
}
