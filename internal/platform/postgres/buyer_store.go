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

// PostgresBuyerStore implements the store.BuyerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBuyerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBuyerStore creates a new PostgreSQL implementation of the
// BuyerStore interface. If logger is nil, a default logger will be used.
func NewPostgresBuyerStore(db store.DBTX, logger *slog.Logger) *PostgresBuyerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBuyerStore{
		db:     db,
		logger: logger.With(slog.String("component", "buyer_store")),
	}
}

// Ensure PostgresBuyerStore implements store.BuyerStore interface
var _ store.BuyerStore = (*PostgresBuyerStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresBuyerStore) WithTx(tx *sql.Tx) store.BuyerStore {
	return &PostgresBuyerStore{
		db:     tx,
		logger: s.logger,
	}
}

const buyerColumns = `id, name, email, phone, is_active, created_at, updated_at`

// scanBuyer converts a raw row into a domain Buyer.
func scanBuyer(row rowScanner) (*domain.Buyer, error) {
	var buyer domain.Buyer

	err := row.Scan(
		&buyer.ID,
		&buyer.Name,
		&buyer.Email,
		&buyer.Phone,
		&buyer.IsActive,
		&buyer.CreatedAt,
		&buyer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &buyer, nil
}

// Create implements store.BuyerStore.Create
func (s *PostgresBuyerStore) Create(ctx context.Context, buyer *domain.Buyer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := buyer.Validate(); err != nil {
		log.Warn("buyer validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO buyers (name, email, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		buyer.Name,
		buyer.Email,
		buyer.Phone,
		buyer.IsActive,
	).Scan(&buyer.ID, &buyer.CreatedAt, &buyer.UpdatedAt)
	if err != nil {
		log.Error("failed to create buyer",
			slog.String("error", err.Error()),
			slog.String("email", buyer.Email))
		return err
	}

	log.Info("buyer created successfully",
		slog.Int64("buyer_id", buyer.ID))
	return nil
}

// GetByID implements store.BuyerStore.GetByID
func (s *PostgresBuyerStore) GetByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE id = $1`

	buyer, err := scanBuyer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBuyerNotFound
		}
		log.Error("failed to get buyer by ID",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", id))
		return nil, err
	}

	return buyer, nil
}

// GetByEmail implements store.BuyerStore.GetByEmail
func (s *PostgresBuyerStore) GetByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE email = $1`

	buyer, err := scanBuyer(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBuyerNotFound
		}
		log.Error("failed to get buyer by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return buyer, nil
}

// FindAll implements store.BuyerStore.FindAll
func (s *PostgresBuyerStore) FindAll(ctx context.Context) ([]*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers ORDER BY name`
	return s.queryBuyers(ctx, query)
}

// FindActive implements store.BuyerStore.FindActive
func (s *PostgresBuyerStore) FindActive(ctx context.Context) ([]*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE is_active ORDER BY name`
	return s.queryBuyers(ctx, query)
}

func (s *PostgresBuyerStore) queryBuyers(ctx context.Context, query string, args ...any) ([]*domain.Buyer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query buyers",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	buyers := []*domain.Buyer{}
	for rows.Next() {
		buyer, err := scanBuyer(rows)
		if err != nil {
			log.Error("failed to scan buyer row",
				slog.String("error", err.Error()))
			return nil, err
		}
		buyers = append(buyers, buyer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return buyers, nil
}

// Update implements store.BuyerStore.Update
func (s *PostgresBuyerStore) Update(ctx context.Context, buyer *domain.Buyer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := buyer.Validate(); err != nil {
		log.Warn("buyer validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", buyer.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE buyers
		SET name = $1, email = $2, phone = $3, is_active = $4, updated_at = now()
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		buyer.Name,
		buyer.Email,
		buyer.Phone,
		buyer.IsActive,
		buyer.ID,
	)
	if err != nil {
		log.Error("failed to update buyer",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", buyer.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrBuyerNotFound
	}
	return nil
}

// Delete implements store.BuyerStore.Delete
func (s *PostgresBuyerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM buyers WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: buyer %d has dependent inquiries or offers",
				store.ErrConstraintViolation, id)
		}
		log.Error("failed to delete buyer",
			slog.String("error", err.Error()),
			slog.Int64("buyer_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrBuyerNotFound
	}
	return nil
}
