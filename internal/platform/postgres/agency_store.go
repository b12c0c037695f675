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

// PostgresAgencyStore implements the store.AgencyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAgencyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAgencyStore creates a new PostgreSQL implementation of the
// AgencyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAgencyStore(db store.DBTX, logger *slog.Logger) *PostgresAgencyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAgencyStore{
		db:     db,
		logger: logger.With(slog.String("component", "agency_store")),
	}
}

// Ensure PostgresAgencyStore implements store.AgencyStore interface
var _ store.AgencyStore = (*PostgresAgencyStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresAgencyStore) WithTx(tx *sql.Tx) store.AgencyStore {
	return &PostgresAgencyStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AgencyStore.Create
// It saves a new agency, binding every mutable field as a parameter and
// assigning the generated key back onto the entity.
func (s *PostgresAgencyStore) Create(ctx context.Context, agency *domain.Agency) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := agency.Validate(); err != nil {
		log.Warn("agency validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO agencies (name, address, phone, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		agency.Name,
		agency.Address,
		agency.Phone,
	).Scan(&agency.ID, &agency.CreatedAt, &agency.UpdatedAt)
	if err != nil {
		log.Error("failed to create agency",
			slog.String("error", err.Error()),
			slog.String("name", agency.Name))
		return err
	}

	log.Info("agency created successfully",
		slog.Int64("agency_id", agency.ID),
		slog.String("name", agency.Name))
	return nil
}

const agencyColumns = `id, name, address, phone, created_at, updated_at`

// scanAgency converts a raw row into a domain Agency. It is the single
// mapping routine used by every agency read path.
func scanAgency(row rowScanner) (*domain.Agency, error) {
	var agency domain.Agency

	err := row.Scan(
		&agency.ID,
		&agency.Name,
		&agency.Address,
		&agency.Phone,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &agency, nil
}

// GetByID implements store.AgencyStore.GetByID
// Returns store.ErrAgencyNotFound if the agency does not exist.
func (s *PostgresAgencyStore) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`

	agency, err := scanAgency(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("agency not found", slog.Int64("agency_id", id))
			return nil, store.ErrAgencyNotFound
		}
		log.Error("failed to get agency by ID",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", id))
		return nil, err
	}

	return agency, nil
}

// GetByName implements store.AgencyStore.GetByName
// Returns store.ErrAgencyNotFound if no agency has the given name.
func (s *PostgresAgencyStore) GetByName(ctx context.Context, name string) (*domain.Agency, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE name = $1`

	agency, err := scanAgency(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAgencyNotFound
		}
		log.Error("failed to get agency by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, err
	}

	return agency, nil
}

// FindAll implements store.AgencyStore.FindAll
// Agencies come back ordered by name; an empty store yields an empty slice.
func (s *PostgresAgencyStore) FindAll(ctx context.Context) ([]*domain.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies ORDER BY name`
	return s.queryAgencies(ctx, query)
}

// SearchByName implements store.AgencyStore.SearchByName
// The term is wrapped in wildcard markers and matched case-insensitively.
func (s *PostgresAgencyStore) SearchByName(ctx context.Context, name string) ([]*domain.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE name ILIKE $1 ORDER BY name`
	return s.queryAgencies(ctx, query, "%"+name+"%")
}

// queryAgencies runs a multi-row agency query and maps every row.
func (s *PostgresAgencyStore) queryAgencies(ctx context.Context, query string, args ...any) ([]*domain.Agency, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query agencies",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	agencies := []*domain.Agency{}
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			log.Error("failed to scan agency row",
				slog.String("error", err.Error()))
			return nil, err
		}
		agencies = append(agencies, agency)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return agencies, nil
}

// Update implements store.AgencyStore.Update
// It rewrites the full row by ID and touches updated_at server-side.
// Returns store.ErrAgencyNotFound if no row was affected.
func (s *PostgresAgencyStore) Update(ctx context.Context, agency *domain.Agency) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := agency.Validate(); err != nil {
		log.Warn("agency validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", agency.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE agencies
		SET name = $1, address = $2, phone = $3, updated_at = now()
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		agency.Name,
		agency.Address,
		agency.Phone,
		agency.ID,
	)
	if err != nil {
		log.Error("failed to update agency",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", agency.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", agency.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("agency not found for update",
			slog.Int64("agency_id", agency.ID))
		return store.ErrAgencyNotFound
	}

	log.Info("agency updated successfully",
		slog.Int64("agency_id", agency.ID))
	return nil
}

// Delete implements store.AgencyStore.Delete
// Returns store.ErrAgencyNotFound if no row was affected, and
// store.ErrConstraintViolation if dependent agents still reference the
// agency.
func (s *PostgresAgencyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM agencies WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("agency has dependent rows, delete refused",
				slog.Int64("agency_id", id))
			return fmt.Errorf("%w: agency %d has dependent agents",
				store.ErrConstraintViolation, id)
		}
		log.Error("failed to delete agency",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("agency_id", id))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrAgencyNotFound
	}

	log.Info("agency deleted", slog.Int64("agency_id", id))
	return nil
}

// GetStatistics implements store.AgencyStore.GetStatistics
// It computes the agency rollup in one aggregation query. The outer joins
// keep agencies without agents or handled properties in the counts, and an
// empty store yields the all-zero aggregate rather than an error.
func (s *PostgresAgencyStore) GetStatistics(ctx context.Context) (*store.AgencyStatistics, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(DISTINCT ag.id) AS total_agencies,
			COUNT(DISTINCT a.id) AS total_agents,
			COUNT(DISTINCT p.id) AS total_properties,
			COUNT(DISTINCT CASE WHEN p.status = 'sold' THEN p.id END) AS sold_properties
		FROM agencies ag
		LEFT JOIN agents a ON a.agency_id = ag.id
		LEFT JOIN inquiries i ON i.agent_id = a.id
		LEFT JOIN properties p ON p.id = i.property_id
	`

	var stats store.AgencyStatistics
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalAgencies,
		&stats.TotalAgents,
		&stats.TotalProperties,
		&stats.SoldProperties,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &store.AgencyStatistics{}, nil
		}
		log.Error("failed to get agency statistics",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &stats, nil
}
