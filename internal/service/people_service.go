package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// RegisterAgent validates and saves a new agent under an existing agency.
// Registering against a missing agency fails with store.ErrInvalidEntity
// wrapped in the service error.
func (s *PortalService) RegisterAgent(ctx context.Context, agencyID int64, name, email, phone string) (*domain.Agent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	agent, err := domain.NewAgent(agencyID, name, email, phone)
	if err != nil {
		log.Warn("agent registration rejected",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, NewPortalServiceError("register_agent", "invalid agent", err)
	}

	if err := s.stores.Agents.Create(ctx, agent); err != nil {
		log.Error("failed to save agent",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, NewPortalServiceError("register_agent", "failed to save agent", err)
	}

	log.Info("agent registered",
		slog.Int64("agent_id", agent.ID),
		slog.Int64("agency_id", agencyID))
	return agent, nil
}

// GetAgentByID retrieves a single agent.
func (s *PortalService) GetAgentByID(ctx context.Context, id int64) (*domain.Agent, error) {
	agent, err := s.stores.Agents.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_agent", "agent not found", err)
		}
		return nil, NewPortalServiceError("get_agent", "failed to retrieve agent", err)
	}
	return agent, nil
}

// GetAgentsByAgency lists the agents belonging to one agency.
func (s *PortalService) GetAgentsByAgency(ctx context.Context, agencyID int64) ([]*domain.Agent, error) {
	agents, err := s.stores.Agents.FindByAgency(ctx, agencyID)
	if err != nil {
		return nil, NewPortalServiceError("agents_by_agency", "failed to list agents", err)
	}
	return agents, nil
}

// SetAgentActive flips an agent's active flag.
func (s *PortalService) SetAgentActive(ctx context.Context, id int64, active bool) error {
	if err := s.stores.Agents.SetActive(ctx, id, active); err != nil {
		if store.IsNotFoundError(err) {
			return NewPortalServiceError("set_agent_active", "agent not found", err)
		}
		return NewPortalServiceError("set_agent_active", "failed to update agent", err)
	}
	return nil
}

// RecordMonthlyPerformance opens a performance row for an agent and period.
// The period is normalized to the first of its month; one row exists per
// agent per period, so recording the same period twice fails with
// store.ErrDuplicate wrapped in the service error.
func (s *PortalService) RecordMonthlyPerformance(ctx context.Context, agentID int64, period time.Time) (*domain.AgentPerformance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	perf, err := domain.NewAgentPerformance(agentID, period)
	if err != nil {
		log.Warn("performance record rejected",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agentID))
		return nil, NewPortalServiceError("record_performance", "invalid performance record", err)
	}

	if err := s.stores.Performance.Create(ctx, perf); err != nil {
		log.Error("failed to save performance record",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agentID))
		return nil, NewPortalServiceError("record_performance", "failed to save performance record", err)
	}

	return perf, nil
}

// GetAgentPerformanceHistory lists an agent's performance rows, most recent
// period first.
func (s *PortalService) GetAgentPerformanceHistory(ctx context.Context, agentID int64) ([]*domain.AgentPerformance, error) {
	history, err := s.stores.Performance.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, NewPortalServiceError("performance_history", "failed to list performance records", err)
	}
	return history, nil
}

// RegisterBuyer validates and saves a new buyer.
func (s *PortalService) RegisterBuyer(ctx context.Context, name, email, phone string) (*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	buyer, err := domain.NewBuyer(name, email, phone)
	if err != nil {
		log.Warn("buyer registration rejected",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, NewPortalServiceError("register_buyer", "invalid buyer", err)
	}

	if err := s.stores.Buyers.Create(ctx, buyer); err != nil {
		log.Error("failed to save buyer",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, NewPortalServiceError("register_buyer", "failed to save buyer", err)
	}

	log.Info("buyer registered", slog.Int64("buyer_id", buyer.ID))
	return buyer, nil
}

// GetBuyerByID retrieves a single buyer.
func (s *PortalService) GetBuyerByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	buyer, err := s.stores.Buyers.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_buyer", "buyer not found", err)
		}
		return nil, NewPortalServiceError("get_buyer", "failed to retrieve buyer", err)
	}
	return buyer, nil
}

// GetBuyerByEmail retrieves the buyer registered under an email address.
func (s *PortalService) GetBuyerByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	buyer, err := s.stores.Buyers.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, NewPortalServiceError("get_buyer_by_email", "buyer not found", err)
		}
		return nil, NewPortalServiceError("get_buyer_by_email", "failed to retrieve buyer", err)
	}
	return buyer, nil
}

// AddFeature validates and saves a new catalog feature.
func (s *PortalService) AddFeature(ctx context.Context, name string, category domain.FeatureCategory, description string) (*domain.Feature, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	feature, err := domain.NewFeature(name, category, description)
	if err != nil {
		log.Warn("feature rejected",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewPortalServiceError("add_feature", "invalid feature", err)
	}

	if err := s.stores.Features.Create(ctx, feature); err != nil {
		log.Error("failed to save feature",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewPortalServiceError("add_feature", "failed to save feature", err)
	}

	return feature, nil
}

// GetFeaturesByCategory lists the catalog features in one category.
func (s *PortalService) GetFeaturesByCategory(ctx context.Context, category domain.FeatureCategory) ([]*domain.Feature, error) {
	features, err := s.stores.Features.FindByCategory(ctx, category)
	if err != nil {
		return nil, NewPortalServiceError("features_by_category", "failed to list features", err)
	}
	return features, nil
}
