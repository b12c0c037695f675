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

// PostgresInquiryStore implements the store.InquiryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresInquiryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInquiryStore creates a new PostgreSQL implementation of the
// InquiryStore interface. If logger is nil, a default logger will be used.
func NewPostgresInquiryStore(db store.DBTX, logger *slog.Logger) *PostgresInquiryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInquiryStore{
		db:     db,
		logger: logger.With(slog.String("component", "inquiry_store")),
	}
}

// Ensure PostgresInquiryStore implements store.InquiryStore interface
var _ store.InquiryStore = (*PostgresInquiryStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresInquiryStore) WithTx(tx *sql.Tx) store.InquiryStore {
	return &PostgresInquiryStore{
		db:     tx,
		logger: s.logger,
	}
}

const inquiryColumns = `
	id, created_at, message, status, agent_id, buyer_id, property_id,
	responded_at, closed_at, response_time_minutes, inquiry_type, priority, updated_at`

// scanInquiry converts a raw row into a domain Inquiry. Unrecognized enum
// codes surface as decoding failures, never as defaults.
func scanInquiry(row rowScanner) (*domain.Inquiry, error) {
	var (
		inquiry      domain.Inquiry
		statusCode   string
		typeCode     string
		priorityCode string
		respondedAt  sql.NullTime
		closedAt     sql.NullTime
		responseTime sql.NullInt64
	)

	err := row.Scan(
		&inquiry.ID,
		&inquiry.CreatedAt,
		&inquiry.Message,
		&statusCode,
		&inquiry.AgentID,
		&inquiry.BuyerID,
		&inquiry.PropertyID,
		&respondedAt,
		&closedAt,
		&responseTime,
		&typeCode,
		&priorityCode,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	inquiry.Status, err = domain.ParseInquiryStatus(statusCode)
	if err != nil {
		return nil, fmt.Errorf("%w: inquiry %d: %v", store.ErrDecodingFailed, inquiry.ID, err)
	}

	inquiry.InquiryType, err = domain.ParseInquiryType(typeCode)
	if err != nil {
		return nil, fmt.Errorf("%w: inquiry %d: %v", store.ErrDecodingFailed, inquiry.ID, err)
	}

	inquiry.Priority, err = domain.ParseInquiryPriority(priorityCode)
	if err != nil {
		return nil, fmt.Errorf("%w: inquiry %d: %v", store.ErrDecodingFailed, inquiry.ID, err)
	}

	if respondedAt.Valid {
		t := respondedAt.Time
		inquiry.RespondedAt = &t
	}
	if closedAt.Valid {
		t := closedAt.Time
		inquiry.ClosedAt = &t
	}
	if responseTime.Valid {
		m := int(responseTime.Int64)
		inquiry.ResponseTimeMinutes = &m
	}

	return &inquiry, nil
}

// Create implements store.InquiryStore.Create
// Returns store.ErrInvalidEntity when the agent, buyer, or property does
// not exist.
func (s *PostgresInquiryStore) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := inquiry.Validate(); err != nil {
		log.Warn("inquiry validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO inquiries (
			created_at, message, status, agent_id, buyer_id, property_id,
			inquiry_type, priority, updated_at
		)
		VALUES (now(), $1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inquiry.Message,
		string(inquiry.Status),
		inquiry.AgentID,
		inquiry.BuyerID,
		inquiry.PropertyID,
		string(inquiry.InquiryType),
		string(inquiry.Priority),
	).Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during inquiry creation",
				slog.Int64("agent_id", inquiry.AgentID),
				slog.Int64("buyer_id", inquiry.BuyerID),
				slog.Int64("property_id", inquiry.PropertyID))
			return fmt.Errorf("%w: referenced agent, buyer, or property not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create inquiry",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("inquiry created successfully",
		slog.Int64("inquiry_id", inquiry.ID),
		slog.Int64("property_id", inquiry.PropertyID))
	return nil
}

// GetByID implements store.InquiryStore.GetByID
func (s *PostgresInquiryStore) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	inquiry, err := scanInquiry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrInquiryNotFound
		}
		log.Error("failed to get inquiry by ID",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", id))
		return nil, err
	}

	return inquiry, nil
}

// FindAll implements store.InquiryStore.FindAll
func (s *PostgresInquiryStore) FindAll(ctx context.Context) ([]*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC`
	return s.queryInquiries(ctx, query)
}

// FindByProperty implements store.InquiryStore.FindByProperty
func (s *PostgresInquiryStore) FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries
		WHERE property_id = $1 ORDER BY created_at DESC`
	return s.queryInquiries(ctx, query, propertyID)
}

// FindByAgent implements store.InquiryStore.FindByAgent
func (s *PostgresInquiryStore) FindByAgent(ctx context.Context, agentID int64) ([]*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries
		WHERE agent_id = $1 ORDER BY created_at DESC`
	return s.queryInquiries(ctx, query, agentID)
}

// FindByStatus implements store.InquiryStore.FindByStatus
func (s *PostgresInquiryStore) FindByStatus(ctx context.Context, status domain.InquiryStatus) ([]*domain.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries
		WHERE status = $1 ORDER BY created_at DESC`
	return s.queryInquiries(ctx, query, string(status))
}

func (s *PostgresInquiryStore) queryInquiries(ctx context.Context, query string, args ...any) ([]*domain.Inquiry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query inquiries",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	inquiries := []*domain.Inquiry{}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			log.Error("failed to scan inquiry row",
				slog.String("error", err.Error()))
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return inquiries, nil
}

// MarkResponded implements store.InquiryStore.MarkResponded
// It stamps responded_at and derives the response time in whole minutes
// from created_at, all server-side so the two stay consistent.
func (s *PostgresInquiryStore) MarkResponded(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE inquiries
		SET status = 'responded',
			responded_at = now(),
			response_time_minutes = GREATEST(0, FLOOR(EXTRACT(EPOCH FROM (now() - created_at)) / 60))::int,
			updated_at = now()
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to mark inquiry responded",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", id))
		return err
	}

	return requireInquiryRow(log, result, id)
}

// Close implements store.InquiryStore.Close
func (s *PostgresInquiryStore) Close(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE inquiries
		SET status = 'closed', closed_at = now(), updated_at = now()
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to close inquiry",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", id))
		return err
	}

	return requireInquiryRow(log, result, id)
}

// Update implements store.InquiryStore.Update. Only message, status, type,
// and priority are written; responded_at, closed_at, and the response time
// belong to MarkResponded and Close.
func (s *PostgresInquiryStore) Update(ctx context.Context, inquiry *domain.Inquiry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := inquiry.Validate(); err != nil {
		log.Warn("inquiry validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", inquiry.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE inquiries
		SET message = $1, status = $2, inquiry_type = $3, priority = $4,
			updated_at = now()
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		inquiry.Message,
		string(inquiry.Status),
		string(inquiry.InquiryType),
		string(inquiry.Priority),
		inquiry.ID,
	)
	if err != nil {
		log.Error("failed to update inquiry",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", inquiry.ID))
		return err
	}

	return requireInquiryRow(log, result, inquiry.ID)
}

// Delete implements store.InquiryStore.Delete
func (s *PostgresInquiryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM inquiries WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete inquiry",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", id))
		return err
	}

	return requireInquiryRow(log, result, id)
}

func requireInquiryRow(log *slog.Logger, result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("inquiry_id", id))
		return err
	}
	if rowsAffected == 0 {
		return store.ErrInquiryNotFound
	}
	return nil
}
