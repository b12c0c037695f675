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

// PostgresPropertyStore implements the store.PropertyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPropertyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPropertyStore creates a new PostgreSQL implementation of the
// PropertyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPropertyStore(db store.DBTX, logger *slog.Logger) *PostgresPropertyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPropertyStore{
		db:     db,
		logger: logger.With(slog.String("component", "property_store")),
	}
}

// Ensure PostgresPropertyStore implements store.PropertyStore interface
var _ store.PropertyStore = (*PostgresPropertyStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresPropertyStore) WithTx(tx *sql.Tx) store.PropertyStore {
	return &PostgresPropertyStore{
		db:     tx,
		logger: s.logger,
	}
}

// days_on_market is derived by the store from the listing date and either
// the sold date or the current date; the entity never writes it back.
const propertyColumns = `
	id, title, description, address, neighborhood, region, property_type,
	listing_date, current_price, status, sold_date,
	(COALESCE(sold_date, now())::date - listing_date::date) AS days_on_market,
	created_at, updated_at`

// scanProperty converts a raw row into a domain Property. It is the single
// mapping routine used by every property read path. Unrecognized enum codes
// surface as decoding failures, never as defaults.
func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		property   domain.Property
		typeCode   string
		statusCode string
		soldDate   sql.NullTime
	)

	err := row.Scan(
		&property.ID,
		&property.Title,
		&property.Description,
		&property.Address,
		&property.Neighborhood,
		&property.Region,
		&typeCode,
		&property.ListingDate,
		&property.CurrentPrice,
		&statusCode,
		&soldDate,
		&property.DaysOnMarket,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	property.PropertyType, err = domain.ParsePropertyType(typeCode)
	if err != nil {
		return nil, fmt.Errorf("%w: property %d: %v", store.ErrDecodingFailed, property.ID, err)
	}

	property.Status, err = domain.ParsePropertyStatus(statusCode)
	if err != nil {
		return nil, fmt.Errorf("%w: property %d: %v", store.ErrDecodingFailed, property.ID, err)
	}

	if soldDate.Valid {
		t := soldDate.Time
		property.SoldDate = &t
	}

	return &property, nil
}

// Create implements store.PropertyStore.Create
// It saves a new listing, binding every mutable field as a parameter and
// assigning the generated key back onto the entity.
func (s *PostgresPropertyStore) Create(ctx context.Context, property *domain.Property) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := property.Validate(); err != nil {
		log.Warn("property validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO properties (
			title, description, address, neighborhood, region, property_type,
			listing_date, current_price, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		property.Title,
		property.Description,
		property.Address,
		property.Neighborhood,
		property.Region,
		string(property.PropertyType),
		property.ListingDate,
		property.CurrentPrice,
		string(property.Status),
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
	if err != nil {
		log.Error("failed to create property",
			slog.String("error", err.Error()),
			slog.String("title", property.Title))
		return err
	}

	log.Info("property created successfully",
		slog.Int64("property_id", property.ID),
		slog.String("title", property.Title),
		slog.String("status", string(property.Status)))
	return nil
}

// GetByID implements store.PropertyStore.GetByID
// Returns store.ErrPropertyNotFound if the property does not exist.
func (s *PostgresPropertyStore) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("property not found", slog.Int64("property_id", id))
			return nil, store.ErrPropertyNotFound
		}
		log.Error("failed to get property by ID",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id))
		return nil, err
	}

	return property, nil
}

// FindAll implements store.PropertyStore.FindAll
// Properties come back newest listing first.
func (s *PostgresPropertyStore) FindAll(ctx context.Context) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY listing_date DESC`
	return s.queryProperties(ctx, query)
}

// FindActiveListings implements store.PropertyStore.FindActiveListings
func (s *PostgresPropertyStore) FindActiveListings(ctx context.Context) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE status = 'available' ORDER BY listing_date DESC`
	return s.queryProperties(ctx, query)
}

// FindByNeighborhood implements store.PropertyStore.FindByNeighborhood
func (s *PostgresPropertyStore) FindByNeighborhood(ctx context.Context, neighborhood string) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE neighborhood = $1 ORDER BY listing_date DESC`
	return s.queryProperties(ctx, query, neighborhood)
}

// FindByType implements store.PropertyStore.FindByType
func (s *PostgresPropertyStore) FindByType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE property_type = $1 ORDER BY listing_date DESC`
	return s.queryProperties(ctx, query, string(propertyType))
}

// FindByPriceRange implements store.PropertyStore.FindByPriceRange
// Bounds are inclusive; results come back cheapest first.
func (s *PostgresPropertyStore) FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE current_price BETWEEN $1 AND $2 ORDER BY current_price ASC`
	return s.queryProperties(ctx, query, minPrice, maxPrice)
}

// SearchByText implements store.PropertyStore.SearchByText
// It runs a relevance-ranked full-text match over title, description,
// neighborhood, and region.
func (s *PostgresPropertyStore) SearchByText(ctx context.Context, searchText string) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties
		WHERE to_tsvector('english',
			coalesce(title, '') || ' ' || coalesce(description, '') || ' ' ||
			coalesce(neighborhood, '') || ' ' || coalesce(region, ''))
			@@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english',
				coalesce(title, '') || ' ' || coalesce(description, '') || ' ' ||
				coalesce(neighborhood, '') || ' ' || coalesce(region, '')),
			plainto_tsquery('english', $1)) DESC`
	return s.queryProperties(ctx, query, searchText)
}

// queryProperties runs a multi-row property query and maps every row.
func (s *PostgresPropertyStore) queryProperties(ctx context.Context, query string, args ...any) ([]*domain.Property, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query properties",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	properties := []*domain.Property{}
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			log.Error("failed to scan property row",
				slog.String("error", err.Error()))
			return nil, err
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return properties, nil
}

// Update implements store.PropertyStore.Update
// It rewrites the mutable fields by ID and touches updated_at server-side.
// The listing date is immutable after creation; the sold date is written
// here because callers set it explicitly when a sale completes.
// Returns store.ErrPropertyNotFound if no row was affected.
func (s *PostgresPropertyStore) Update(ctx context.Context, property *domain.Property) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := property.Validate(); err != nil {
		log.Warn("property validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("property_id", property.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE properties
		SET title = $1, description = $2, address = $3, neighborhood = $4,
			region = $5, property_type = $6, current_price = $7, status = $8,
			sold_date = $9, updated_at = now()
		WHERE id = $10
	`

	var soldDate sql.NullTime
	if property.SoldDate != nil {
		soldDate = sql.NullTime{Time: *property.SoldDate, Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query,
		property.Title,
		property.Description,
		property.Address,
		property.Neighborhood,
		property.Region,
		string(property.PropertyType),
		property.CurrentPrice,
		string(property.Status),
		soldDate,
		property.ID,
	)
	if err != nil {
		log.Error("failed to update property",
			slog.String("error", err.Error()),
			slog.Int64("property_id", property.ID))
		return err
	}

	return s.requireRowAffected(log, result, property.ID, "update")
}

// UpdateStatus implements store.PropertyStore.UpdateStatus
// A narrow single-column update so a status transition never overwrites
// unrelated fields.
func (s *PostgresPropertyStore) UpdateStatus(ctx context.Context, id int64, status domain.PropertyStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.ParsePropertyStatus(string(status)); err != nil {
		log.Warn("invalid status for property update",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `UPDATE properties SET status = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		log.Error("failed to update property status",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id),
			slog.String("status", string(status)))
		return err
	}

	return s.requireRowAffected(log, result, id, "update status")
}

// UpdatePrice implements store.PropertyStore.UpdatePrice
func (s *PostgresPropertyStore) UpdatePrice(ctx context.Context, id int64, newPrice int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if newPrice <= 0 {
		log.Warn("invalid price for property update",
			slog.Int64("property_id", id),
			slog.Int64("price", newPrice))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrNonPositivePrice)
	}

	query := `UPDATE properties SET current_price = $1, updated_at = now() WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, newPrice, id)
	if err != nil {
		log.Error("failed to update property price",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id))
		return err
	}

	return s.requireRowAffected(log, result, id, "update price")
}

// Delete implements store.PropertyStore.Delete
func (s *PostgresPropertyStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM properties WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("property has dependent rows, delete refused",
				slog.Int64("property_id", id))
			return fmt.Errorf("%w: property %d has dependent inquiries or offers",
				store.ErrConstraintViolation, id)
		}
		log.Error("failed to delete property",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id))
		return err
	}

	return s.requireRowAffected(log, result, id, "delete")
}

// requireRowAffected converts the affected-row count of a write into the
// not-found contract shared by update and delete.
func (s *PostgresPropertyStore) requireRowAffected(log *slog.Logger, result sql.Result, id int64, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("property_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("property not found",
			slog.Int64("property_id", id),
			slog.String("operation", op))
		return store.ErrPropertyNotFound
	}

	return nil
}

// GetStatistics implements store.PropertyStore.GetStatistics
// One aggregation query computing per-status counts and price extremes.
// An empty table yields the all-zero aggregate via COALESCE, never an error.
func (s *PostgresPropertyStore) GetStatistics(ctx context.Context) (*store.PropertyStatistics, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*) AS total_properties,
			COUNT(*) FILTER (WHERE status = 'available') AS available_properties,
			COUNT(*) FILTER (WHERE status = 'under_offer') AS under_offer_properties,
			COUNT(*) FILTER (WHERE status = 'sold') AS sold_properties,
			COALESCE(FLOOR(AVG(current_price))::bigint, 0) AS avg_price,
			COALESCE(MIN(current_price), 0) AS min_price,
			COALESCE(MAX(current_price), 0) AS max_price
		FROM properties
	`

	var stats store.PropertyStatistics
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalProperties,
		&stats.AvailableProperties,
		&stats.UnderOfferProperties,
		&stats.SoldProperties,
		&stats.AvgPrice,
		&stats.MinPrice,
		&stats.MaxPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &store.PropertyStatistics{}, nil
		}
		log.Error("failed to get property statistics",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &stats, nil
}
