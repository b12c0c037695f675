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

// PostgresFeatureStore implements the store.FeatureStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFeatureStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFeatureStore creates a new PostgreSQL implementation of the
// FeatureStore interface. If logger is nil, a default logger will be used.
func NewPostgresFeatureStore(db store.DBTX, logger *slog.Logger) *PostgresFeatureStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFeatureStore{
		db:     db,
		logger: logger.With(slog.String("component", "feature_store")),
	}
}

// Ensure PostgresFeatureStore implements store.FeatureStore interface
var _ store.FeatureStore = (*PostgresFeatureStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresFeatureStore) WithTx(tx *sql.Tx) store.FeatureStore {
	return &PostgresFeatureStore{
		db:     tx,
		logger: s.logger,
	}
}

const featureColumns = `id, name, category, description, created_at`

// scanFeature converts a raw row into a domain Feature. Unrecognized
// category codes surface as decoding failures.
func scanFeature(row rowScanner) (*domain.Feature, error) {
	var (
		feature      domain.Feature
		categoryCode string
	)

	err := row.Scan(
		&feature.ID,
		&feature.Name,
		&categoryCode,
		&feature.Description,
		&feature.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	feature.Category, err = domain.ParseFeatureCategory(categoryCode)
	if err != nil {
		return nil, fmt.Errorf("%w: feature %d: %v", store.ErrDecodingFailed, feature.ID, err)
	}

	return &feature, nil
}

// Create implements store.FeatureStore.Create
func (s *PostgresFeatureStore) Create(ctx context.Context, feature *domain.Feature) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := feature.Validate(); err != nil {
		log.Warn("feature validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO features (name, category, description, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		feature.Name,
		string(feature.Category),
		feature.Description,
	).Scan(&feature.ID, &feature.CreatedAt)
	if err != nil {
		log.Error("failed to create feature",
			slog.String("error", err.Error()),
			slog.String("name", feature.Name))
		return err
	}

	log.Info("feature created successfully",
		slog.Int64("feature_id", feature.ID),
		slog.String("name", feature.Name))
	return nil
}

// GetByID implements store.FeatureStore.GetByID
func (s *PostgresFeatureStore) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + featureColumns + ` FROM features WHERE id = $1`

	feature, err := scanFeature(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrFeatureNotFound
		}
		log.Error("failed to get feature by ID",
			slog.String("error", err.Error()),
			slog.Int64("feature_id", id))
		return nil, err
	}

	return feature, nil
}

// FindAll implements store.FeatureStore.FindAll
func (s *PostgresFeatureStore) FindAll(ctx context.Context) ([]*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features ORDER BY name`
	return s.queryFeatures(ctx, query)
}

// FindByCategory implements store.FeatureStore.FindByCategory
func (s *PostgresFeatureStore) FindByCategory(ctx context.Context, category domain.FeatureCategory) ([]*domain.Feature, error) {
	query := `SELECT ` + featureColumns + ` FROM features WHERE category = $1 ORDER BY name`
	return s.queryFeatures(ctx, query, string(category))
}

func (s *PostgresFeatureStore) queryFeatures(ctx context.Context, query string, args ...any) ([]*domain.Feature, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query features",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	features := []*domain.Feature{}
	for rows.Next() {
		feature, err := scanFeature(rows)
		if err != nil {
			log.Error("failed to scan feature row",
				slog.String("error", err.Error()))
			return nil, err
		}
		features = append(features, feature)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return features, nil
}

// Update implements store.FeatureStore.Update
func (s *PostgresFeatureStore) Update(ctx context.Context, feature *domain.Feature) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := feature.Validate(); err != nil {
		log.Warn("feature validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("feature_id", feature.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE features
		SET name = $1, category = $2, description = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		feature.Name,
		string(feature.Category),
		feature.Description,
		feature.ID,
	)
	if err != nil {
		log.Error("failed to update feature",
			slog.String("error", err.Error()),
			slog.Int64("feature_id", feature.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrFeatureNotFound
	}
	return nil
}

// Delete implements store.FeatureStore.Delete
func (s *PostgresFeatureStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM features WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete feature",
			slog.String("error", err.Error()),
			slog.Int64("feature_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrFeatureNotFound
	}
	return nil
}
