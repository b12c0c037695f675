package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/store"
)

// PostgresAgentPerformanceStore implements the store.AgentPerformanceStore
// interface using a PostgreSQL database as the storage backend.
type PostgresAgentPerformanceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgentPerformanceStore creates a new PostgreSQL implementation
// of the AgentPerformanceStore interface. If logger is nil, a default
// logger will be used.
func NewPostgresAgentPerformanceStore(db store.DBTX, logger *slog.Logger) *PostgresAgentPerformanceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAgentPerformanceStore{
		db:     db,
		logger: logger.With(slog.String("component", "performance_store")),
	}
}

// Ensure PostgresAgentPerformanceStore implements the interface
var _ store.AgentPerformanceStore = (*PostgresAgentPerformanceStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresAgentPerformanceStore) WithTx(tx *sql.Tx) store.AgentPerformanceStore {
	return &PostgresAgentPerformanceStore{
		db:     tx,
		logger: s.logger,
	}
}

const performanceColumns = `
	id, agent_id, month_year, total_inquiries, responded_inquiries,
	avg_response_time_minutes, closed_deals, total_revenue, created_at, updated_at`

// scanPerformance converts a raw row into a domain AgentPerformance.
func scanPerformance(row rowScanner) (*domain.AgentPerformance, error) {
	var perf domain.AgentPerformance

	err := row.Scan(
		&perf.ID,
		&perf.AgentID,
		&perf.MonthYear,
		&perf.TotalInquiries,
		&perf.RespondedInquiries,
		&perf.AvgResponseTimeMinutes,
		&perf.ClosedDeals,
		&perf.TotalRevenue,
		&perf.CreatedAt,
		&perf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &perf, nil
}

// Create implements store.AgentPerformanceStore.Create
// The (agent_id, month_year) pair is unique; a second record for the same
// period returns store.ErrDuplicate.
func (s *PostgresAgentPerformanceStore) Create(ctx context.Context, perf *domain.AgentPerformance) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := perf.Validate(); err != nil {
		log.Warn("performance validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO agent_performance (
			agent_id, month_year, total_inquiries, responded_inquiries,
			avg_response_time_minutes, closed_deals, total_revenue, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		perf.AgentID,
		perf.MonthYear,
		perf.TotalInquiries,
		perf.RespondedInquiries,
		perf.AvgResponseTimeMinutes,
		perf.ClosedDeals,
		perf.TotalRevenue,
	).Scan(&perf.ID, &perf.CreatedAt, &perf.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("performance record already exists for period",
				slog.Int64("agent_id", perf.AgentID),
				slog.Time("month_year", perf.MonthYear))
			return fmt.Errorf("%w: performance for agent %d in period %s",
				store.ErrDuplicate, perf.AgentID, perf.MonthYear.Format("2006-01"))
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: agent with ID %d not found",
				store.ErrInvalidEntity, perf.AgentID)
		}
		log.Error("failed to create performance record",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", perf.AgentID))
		return err
	}

	log.Info("performance record created",
		slog.Int64("performance_id", perf.ID),
		slog.Int64("agent_id", perf.AgentID))
	return nil
}

// GetByID implements store.AgentPerformanceStore.GetByID
func (s *PostgresAgentPerformanceStore) GetByID(ctx context.Context, id int64) (*domain.AgentPerformance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + performanceColumns + ` FROM agent_performance WHERE id = $1`

	perf, err := scanPerformance(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPerformanceNotFound
		}
		log.Error("failed to get performance record by ID",
			slog.String("error", err.Error()),
			slog.Int64("performance_id", id))
		return nil, err
	}

	return perf, nil
}

// GetByAgentAndPeriod implements store.AgentPerformanceStore.GetByAgentAndPeriod
func (s *PostgresAgentPerformanceStore) GetByAgentAndPeriod(ctx context.Context, agentID int64, period time.Time) (*domain.AgentPerformance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + performanceColumns + ` FROM agent_performance
		WHERE agent_id = $1 AND month_year = $2`

	perf, err := scanPerformance(s.db.QueryRowContext(ctx, query, agentID, domain.PeriodKey(period)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPerformanceNotFound
		}
		log.Error("failed to get performance record by period",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agentID))
		return nil, err
	}

	return perf, nil
}

// FindByAgent implements store.AgentPerformanceStore.FindByAgent
func (s *PostgresAgentPerformanceStore) FindByAgent(ctx context.Context, agentID int64) ([]*domain.AgentPerformance, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + performanceColumns + ` FROM agent_performance
		WHERE agent_id = $1 ORDER BY month_year DESC`

	rows, err := s.db.QueryContext(ctx, query, agentID)
	if err != nil {
		log.Error("failed to query performance records",
			slog.String("error", err.Error()),
			slog.Int64("agent_id", agentID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []*domain.AgentPerformance{}
	for rows.Next() {
		perf, err := scanPerformance(rows)
		if err != nil {
			log.Error("failed to scan performance row",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, perf)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// Update implements store.AgentPerformanceStore.Update
func (s *PostgresAgentPerformanceStore) Update(ctx context.Context, perf *domain.AgentPerformance) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := perf.Validate(); err != nil {
		log.Warn("performance validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("performance_id", perf.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE agent_performance
		SET total_inquiries = $1, responded_inquiries = $2,
			avg_response_time_minutes = $3, closed_deals = $4,
			total_revenue = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		perf.TotalInquiries,
		perf.RespondedInquiries,
		perf.AvgResponseTimeMinutes,
		perf.ClosedDeals,
		perf.TotalRevenue,
		perf.ID,
	)
	if err != nil {
		log.Error("failed to update performance record",
			slog.String("error", err.Error()),
			slog.Int64("performance_id", perf.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPerformanceNotFound
	}
	return nil
}

// Delete implements store.AgentPerformanceStore.Delete
func (s *PostgresAgentPerformanceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM agent_performance WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete performance record",
			slog.String("error", err.Error()),
			slog.Int64("performance_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPerformanceNotFound
	}
	return nil
}
