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

// PostgresOfferStore implements the store.OfferStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOfferStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOfferStore creates a new PostgreSQL implementation of the
// OfferStore interface. If logger is nil, a default logger will be used.
func NewPostgresOfferStore(db store.DBTX, logger *slog.Logger) *PostgresOfferStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOfferStore{
		db:     db,
		logger: logger.With(slog.String("component", "offer_store")),
	}
}

// Ensure PostgresOfferStore implements store.OfferStore interface
var _ store.OfferStore = (*PostgresOfferStore)(nil)

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresOfferStore) WithTx(tx *sql.Tx) store.OfferStore {
	return &PostgresOfferStore{
		db:     tx,
		logger: s.logger,
	}
}

const offerColumns = `
	id, agent_id, buyer_id, property_id, offer_amount, offer_date, status,
	response_date, notes, created_at, updated_at`

func scanOffer(row rowScanner) (*domain.Offer, error) {
	var (
		offer        domain.Offer
		statusCode   string
		responseDate sql.NullTime
	)

	err := row.Scan(
		&offer.ID,
		&offer.AgentID,
		&offer.BuyerID,
		&offer.PropertyID,
		&offer.OfferAmount,
		&offer.OfferDate,
		&statusCode,
		&responseDate,
		&offer.Notes,
		&offer.CreatedAt,
		&offer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	offer.Status, err = domain.ParseOfferStatus(statusCode)
	if err != nil {
		return nil, fmt.Errorf("%w: offer %d: %v", store.ErrDecodingFailed, offer.ID, err)
	}

	if responseDate.Valid {
		t := responseDate.Time
		offer.ResponseDate = &t
	}

	return &offer, nil
}

// Create implements store.OfferStore.Create
// Returns store.ErrInvalidEntity when the agent, buyer, or property does
// not exist.
func (s *PostgresOfferStore) Create(ctx context.Context, offer *domain.Offer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := offer.Validate(); err != nil {
		log.Warn("offer validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO offers (
			agent_id, buyer_id, property_id, offer_amount, offer_date,
			status, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		offer.AgentID,
		offer.BuyerID,
		offer.PropertyID,
		offer.OfferAmount,
		offer.OfferDate,
		string(offer.Status),
		offer.Notes,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during offer creation",
				slog.Int64("agent_id", offer.AgentID),
				slog.Int64("buyer_id", offer.BuyerID),
				slog.Int64("property_id", offer.PropertyID))
			return fmt.Errorf("%w: referenced agent, buyer, or property not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create offer",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("offer created successfully",
		slog.Int64("offer_id", offer.ID),
		slog.Int64("property_id", offer.PropertyID),
		slog.Int64("offer_amount", offer.OfferAmount))
	return nil
}

// GetByID implements store.OfferStore.GetByID
func (s *PostgresOfferStore) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	offer, err := scanOffer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOfferNotFound
		}
		log.Error("failed to get offer by ID",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", id))
		return nil, err
	}

	return offer, nil
}

// FindByProperty implements store.OfferStore.FindByProperty
func (s *PostgresOfferStore) FindByProperty(ctx context.Context, propertyID int64) ([]*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
		WHERE property_id = $1 ORDER BY offer_date DESC`
	return s.queryOffers(ctx, query, propertyID)
}

// FindByBuyer implements store.OfferStore.FindByBuyer
func (s *PostgresOfferStore) FindByBuyer(ctx context.Context, buyerID int64) ([]*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
		WHERE buyer_id = $1 ORDER BY offer_date DESC`
	return s.queryOffers(ctx, query, buyerID)
}

// FindByStatus implements store.OfferStore.FindByStatus
func (s *PostgresOfferStore) FindByStatus(ctx context.Context, status domain.OfferStatus) ([]*domain.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
		WHERE status = $1 ORDER BY offer_date DESC`
	return s.queryOffers(ctx, query, string(status))
}

func (s *PostgresOfferStore) queryOffers(ctx context.Context, query string, args ...any) ([]*domain.Offer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query offers",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	offers := []*domain.Offer{}
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			log.Error("failed to scan offer row",
				slog.String("error", err.Error()))
			return nil, err
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return offers, nil
}

// UpdateStatus implements store.OfferStore.UpdateStatus
// Any status change counts as a response, so the response date is stamped
// alongside the new status.
func (s *PostgresOfferStore) UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := domain.ParseOfferStatus(string(status)); err != nil {
		log.Warn("rejected unknown offer status",
			slog.String("status", string(status)),
			slog.Int64("offer_id", id))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE offers
		SET status = $1, response_date = now(), updated_at = now()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		log.Error("failed to update offer status",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", id))
		return err
	}

	return requireOfferRow(log, result, id)
}

// Update implements store.OfferStore.Update
func (s *PostgresOfferStore) Update(ctx context.Context, offer *domain.Offer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := offer.Validate(); err != nil {
		log.Warn("offer validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", offer.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var responseDate sql.NullTime
	if offer.ResponseDate != nil {
		responseDate = sql.NullTime{Time: *offer.ResponseDate, Valid: true}
	}

	query := `
		UPDATE offers
		SET offer_amount = $1, offer_date = $2, status = $3,
			response_date = $4, notes = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := s.db.ExecContext(ctx, query,
		offer.OfferAmount,
		offer.OfferDate,
		string(offer.Status),
		responseDate,
		offer.Notes,
		offer.ID,
	)
	if err != nil {
		log.Error("failed to update offer",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", offer.ID))
		return err
	}

	return requireOfferRow(log, result, offer.ID)
}

// Delete implements store.OfferStore.Delete
func (s *PostgresOfferStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM offers WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete offer",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", id))
		return err
	}

	return requireOfferRow(log, result, id)
}

func requireOfferRow(log *slog.Logger, result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("offer_id", id))
		return err
	}
	if rowsAffected == 0 {
		return store.ErrOfferNotFound
	}
	return nil
}
