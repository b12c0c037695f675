package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// PostgresAgentStore implements the store.AgentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAgentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgentStore creates a new PostgreSQL implementation of the
// AgentStore interface. If logger is nil, a default logger will be used.
func NewPostgresAgentStore(db store.DBTX, logger *slog.Logger) *PostgresAgentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAgentStore{
		db:     db,
		logger: logger.With(slog.String("component", "agent_store")),
	}
}

// Ensure PostgresAgentStore implements store.AgentStore interface
var _ store.AgentStore = (*PostgresAgentStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresAgentStore) WithTx(tx *sql.Tx) store.AgentStore {
	return &PostgresAgentStore{
		db:     tx,
		logger: s.logger,
	}
}

const agentColumns = `
	id, agency_id, name, email, phone, is_active,
	total_deals_closed, avg_response_time_minutes, created_at, updated_at`

// scanAgent converts a raw row into a domain Agent.
func scanAgent(row rowScanner) (*domain.Agent, error) {
	var agent domain.Agent

	err := row.Scan(
		&agent.ID,
		&agent.AgencyID,
		&agent.Name,
		&agent.Email,
		&agent.Phone,
		&agent.IsActive,
		&agent.TotalDealsClosed,
		&agent.AvgResponseTimeMinutes,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &agent, nil
}

// Create implements store.AgentStore.Create
// Returns store.ErrInvalidEntity when the agency does not exist.
func (s *PostgresAgentStore) Create(ctx context.Context, agent *domain.Agent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := agent.Validate(); err != nil {
		log.Warn("agent validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO agents (
			agency_id, name, email, phone, is_active,
			total_deals_closed, avg_response_time_minutes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		agent.AgencyID,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.IsActive,
		agent.TotalDealsClosed,
		agent.AvgResponseTimeMinutes,
	).Scan(&agent.ID, &agent.CreatedAt, &agent.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during agent creation",
				slog.Int64("agency_id", agent.AgencyID))
			return fmt.Errorf("%w: agency with ID %d not found",
				store.ErrInvalidEntity, agent.AgencyID)
		}
		log.Error("failed to create agent",
			slog.String("error", err.Error()),
			slog.String("email", agent.Email))
		return err
	}

	log.Info("agent created successfully",
		slog.Int64("agent_id", agent.ID),
		slog.Int64("agency_id", agent.AgencyID))
	return nil
}

// GetByID implements store.AgentStore.GetByID
func (s *PostgresAgentStore) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE id = $1`

	agent, err := scanAgent(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAgentNotFound
		}
		log.Error("failed to get agent by ID",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", id))
		return nil, err
	}

	return agent, nil
}

// GetByEmail implements store.AgentStore.GetByEmail
func (s *PostgresAgentStore) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + agentColumns + ` FROM agents WHERE email = $1`

	agent, err := scanAgent(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAgentNotFound
		}
		log.Error("failed to get agent by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return agent, nil
}

// FindAll implements store.AgentStore.FindAll
func (s *PostgresAgentStore) FindAll(ctx context.Context) ([]*domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents ORDER BY name`
	return s.queryAgents(ctx, query)
}

// FindByAgency implements store.AgentStore.FindByAgency
func (s *PostgresAgentStore) FindByAgency(ctx context.Context, agencyID int64) ([]*domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE agency_id = $1 ORDER BY name`
	return s.queryAgents(ctx, query, agencyID)
}

// FindActive implements store.AgentStore.FindActive
func (s *PostgresAgentStore) FindActive(ctx context.Context) ([]*domain.Agent, error) {
	query := `SELECT ` + agentColumns + ` FROM agents WHERE is_active ORDER BY name`
	return s.queryAgents(ctx, query)
}

func (s *PostgresAgentStore) queryAgents(ctx context.Context, query string, args ...any) ([]*domain.Agent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query agents",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	agents := []*domain.Agent{}
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			log.Error("failed to scan agent row",
				slog.String("error", err.Error()))
			return nil, err
		}
		agents = append(agents, agent)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return agents, nil
}

// Update implements store.AgentStore.Update
func (s *PostgresAgentStore) Update(ctx context.Context, agent *domain.Agent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := agent.Validate(); err != nil {
		log.Warn("agent validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agent.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE agents
		SET agency_id = $1, name = $2, email = $3, phone = $4, is_active = $5,
			total_deals_closed = $6, avg_response_time_minutes = $7, updated_at = now()
		WHERE id = $8
	`

	result, err := s.db.ExecContext(ctx, query,
		agent.AgencyID,
		agent.Name,
		agent.Email,
		agent.Phone,
		agent.IsActive,
		agent.TotalDealsClosed,
		agent.AvgResponseTimeMinutes,
		agent.ID,
	)
	if err != nil {
		log.Error("failed to update agent",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agent.ID))
		return err
	}

	return requireAgentRow(log, result, agent.ID)
}

// SetActive implements store.AgentStore.SetActive
func (s *PostgresAgentStore) SetActive(ctx context.Context, id int64, active bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE agents SET is_active = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		log.Error("failed to update agent active flag",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", id))
		return err
	}

	return requireAgentRow(log, result, id)
}

// Delete implements store.AgentStore.Delete
func (s *PostgresAgentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM agents WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: agent %d has dependent inquiries or offers",
				store.ErrConstraintViolation, id)
		}
		log.Error("failed to delete agent",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", id))
		return err
	}

	return requireAgentRow(log, result, id)
}

func requireAgentRow(log *slog.Logger, result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", id))
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAgentNotFound
	}
	return nil
}
