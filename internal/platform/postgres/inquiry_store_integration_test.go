package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/postgres"
	"github.com/alienx5499/property-portal/internal/store"
	"github.com/alienx5499/property-portal/internal/testdb"
)

// txStores bundles the per-entity stores bound to one test transaction.
type txStores struct {
	agencies    store.AgencyStore
	agents      store.AgentStore
	buyers      store.BuyerStore
	properties  store.PropertyStore
	inquiries   store.InquiryStore
	offers      store.OfferStore
	performance store.AgentPerformanceStore
}

func newTxStores(db *sql.DB, tx *sql.Tx) txStores {
	logger := testLogger()
	return txStores{
		agencies:    postgres.NewPostgresAgencyStore(db, logger).WithTx(tx),
		agents:      postgres.NewPostgresAgentStore(db, logger).WithTx(tx),
		buyers:      postgres.NewPostgresBuyerStore(db, logger).WithTx(tx),
		properties:  postgres.NewPostgresPropertyStore(db, logger).WithTx(tx),
		inquiries:   postgres.NewPostgresInquiryStore(db, logger).WithTx(tx),
		offers:      postgres.NewPostgresOfferStore(db, logger).WithTx(tx),
		performance: postgres.NewPostgresAgentPerformanceStore(db, logger).WithTx(tx),
	}
}

// seedParticipants creates the agency, agent, buyer, and property rows
// inquiries and offers reference, returning their IDs.
func seedParticipants(t *testing.T, ctx context.Context, s txStores) (agentID, buyerID, propertyID int64) {
	t.Helper()

	agency := mustNewAgency(t, "Villa Realty")
	require.NoError(t, s.agencies.Create(ctx, agency))

	agent, err := domain.NewAgent(agency.ID, "Dana Reyes", "dana@villa.example", "555-0101")
	require.NoError(t, err)
	require.NoError(t, s.agents.Create(ctx, agent))

	buyer, err := domain.NewBuyer("Sam Ortiz", "sam@example.com", "555-0177")
	require.NoError(t, err)
	require.NoError(t, s.buyers.Create(ctx, buyer))

	property := mustNewProperty(t, "Sunny Loft", "Downtown", "North", domain.PropertyTypeApartment, 250_000)
	require.NoError(t, s.properties.Create(ctx, property))

	return agent.ID, buyer.ID, property.ID
}

func TestInquiryStoreLifecycle(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newTxStores(db, tx)
		agentID, buyerID, propertyID := seedParticipants(t, ctx, s)

		inquiry, err := domain.NewInquiry("Is the loft still available?", agentID, buyerID, propertyID)
		require.NoError(t, err)
		require.NoError(t, s.inquiries.Create(ctx, inquiry))
		require.NotZero(t, inquiry.ID)

		loaded, err := s.inquiries.GetByID(ctx, inquiry.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusNew, loaded.Status)
		assert.Nil(t, loaded.RespondedAt)
		assert.Nil(t, loaded.ResponseTimeMinutes)

		require.NoError(t, s.inquiries.MarkResponded(ctx, inquiry.ID))
		responded, err := s.inquiries.GetByID(ctx, inquiry.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusResponded, responded.Status)
		require.NotNil(t, responded.RespondedAt)
		require.NotNil(t, responded.ResponseTimeMinutes)
		assert.GreaterOrEqual(t, *responded.ResponseTimeMinutes, 0)
		assert.WithinDuration(t, time.Now(), *responded.RespondedAt, time.Minute)

		require.NoError(t, s.inquiries.Close(ctx, inquiry.ID))
		closed, err := s.inquiries.GetByID(ctx, inquiry.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusClosed, closed.Status)
		require.NotNil(t, closed.ClosedAt)

		byProperty, err := s.inquiries.FindByProperty(ctx, propertyID)
		require.NoError(t, err)
		assert.Len(t, byProperty, 1)

		byAgent, err := s.inquiries.FindByAgent(ctx, agentID)
		require.NoError(t, err)
		assert.Len(t, byAgent, 1)
	})
}

func TestInquiryStoreCreateRejectsMissingReferences(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newTxStores(db, tx)

		inquiry, err := domain.NewInquiry("Hello", 999999, 999999, 999999)
		require.NoError(t, err)

		err = s.inquiries.Create(ctx, inquiry)
		assert.ErrorIs(t, err, store.ErrInvalidEntity,
			"dangling references should surface as an invalid entity")
	})
}

func TestOfferStoreLifecycle(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newTxStores(db, tx)
		agentID, buyerID, propertyID := seedParticipants(t, ctx, s)

		offer, err := domain.NewOffer(agentID, buyerID, propertyID, 245_000, "cash buyer")
		require.NoError(t, err)
		require.NoError(t, s.offers.Create(ctx, offer))
		require.NotZero(t, offer.ID)

		loaded, err := s.offers.GetByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusPending, loaded.Status)
		assert.Equal(t, int64(245_000), loaded.OfferAmount)
		assert.Nil(t, loaded.ResponseDate)

		require.NoError(t, s.offers.UpdateStatus(ctx, offer.ID, domain.OfferStatusAccepted))
		accepted, err := s.offers.GetByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusAccepted, accepted.Status)
		require.NotNil(t, accepted.ResponseDate,
			"a status decision stamps the response date")

		byProperty, err := s.offers.FindByProperty(ctx, propertyID)
		require.NoError(t, err)
		assert.Len(t, byProperty, 1)

		pending, err := s.offers.FindByStatus(ctx, domain.OfferStatusPending)
		require.NoError(t, err)
		assert.Empty(t, pending)

		require.NoError(t, s.offers.Delete(ctx, offer.ID))
		_, err = s.offers.GetByID(ctx, offer.ID)
		assert.ErrorIs(t, err, store.ErrOfferNotFound)
	})
}

func TestAgentPerformanceStoreUniquePeriod(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := newTxStores(db, tx)
		agentID, _, _ := seedParticipants(t, ctx, s)

		period := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
		perf, err := domain.NewAgentPerformance(agentID, period)
		require.NoError(t, err)
		require.NoError(t, s.performance.Create(ctx, perf))

		history, err := s.performance.FindByAgent(ctx, agentID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, time.March, history[0].MonthYear.Month())

		duplicate, err := domain.NewAgentPerformance(agentID, period.AddDate(0, 0, 5))
		require.NoError(t, err)
		err = s.performance.Create(ctx, duplicate)
		assert.ErrorIs(t, err, store.ErrDuplicate,
			"one row per agent and month")
	})
}
