package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/postgres"
	"github.com/alienx5499/property-portal/internal/store"
	"github.com/alienx5499/property-portal/internal/testdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	t.Cleanup(cancel)
	return ctx
}

func mustNewAgency(t *testing.T, name string) *domain.Agency {
	t.Helper()
	agency, err := domain.NewAgency(name, "12 Harbour St", "555-0142")
	require.NoError(t, err)
	return agency
}

func TestAgencyStoreLifecycle(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		agencies := postgres.NewPostgresAgencyStore(db, testLogger()).WithTx(tx)

		agency := mustNewAgency(t, "Villa Realty")
		require.NoError(t, agencies.Create(ctx, agency))
		require.NotZero(t, agency.ID, "Create should assign the generated ID")
		require.False(t, agency.CreatedAt.IsZero())

		loaded, err := agencies.GetByID(ctx, agency.ID)
		require.NoError(t, err)
		assert.Equal(t, agency.Name, loaded.Name)
		assert.Equal(t, agency.Address, loaded.Address)
		assert.Equal(t, agency.Phone, loaded.Phone)
		assert.WithinDuration(t, agency.CreatedAt, loaded.CreatedAt, time.Second)

		byName, err := agencies.GetByName(ctx, "Villa Realty")
		require.NoError(t, err)
		assert.Equal(t, agency.ID, byName.ID)

		loaded.Phone = "555-0199"
		require.NoError(t, agencies.Update(ctx, loaded))
		updated, err := agencies.GetByID(ctx, agency.ID)
		require.NoError(t, err)
		assert.Equal(t, "555-0199", updated.Phone)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) ||
			updated.UpdatedAt.Equal(updated.CreatedAt))

		require.NoError(t, agencies.Delete(ctx, agency.ID))
		err = agencies.Delete(ctx, agency.ID)
		assert.ErrorIs(t, err, store.ErrAgencyNotFound,
			"second delete should report the agency missing")
	})
}

func TestAgencyStoreNotFound(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		agencies := postgres.NewPostgresAgencyStore(db, testLogger()).WithTx(tx)

		_, err := agencies.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrAgencyNotFound)
		assert.True(t, store.IsNotFoundError(err))

		_, err = agencies.GetByName(ctx, "No Such Agency")
		assert.ErrorIs(t, err, store.ErrAgencyNotFound)

		missing := mustNewAgency(t, "Ghost Realty")
		missing.ID = 999999
		assert.ErrorIs(t, agencies.Update(ctx, missing), store.ErrAgencyNotFound)
	})
}

func TestAgencyStoreSearchByName(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		agencies := postgres.NewPostgresAgencyStore(db, testLogger()).WithTx(tx)

		for _, name := range []string{"Villa Realty", "Oceanfront Group", "Hilltop Villas"} {
			require.NoError(t, agencies.Create(ctx, mustNewAgency(t, name)))
		}

		matches, err := agencies.SearchByName(ctx, "vil")
		require.NoError(t, err)
		require.Len(t, matches, 2, "search should be case-insensitive substring match")
		assert.Equal(t, "Hilltop Villas", matches[0].Name, "results ordered by name")
		assert.Equal(t, "Villa Realty", matches[1].Name)

		none, err := agencies.SearchByName(ctx, "chateau")
		require.NoError(t, err)
		assert.Empty(t, none)

		all, err := agencies.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestAgencyStoreDeleteWithAgentsFails(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		logger := testLogger()
		agencies := postgres.NewPostgresAgencyStore(db, logger).WithTx(tx)
		agents := postgres.NewPostgresAgentStore(db, logger).WithTx(tx)

		agency := mustNewAgency(t, "Villa Realty")
		require.NoError(t, agencies.Create(ctx, agency))

		agent, err := domain.NewAgent(agency.ID, "Dana Reyes", "dana@villa.example", "555-0101")
		require.NoError(t, err)
		require.NoError(t, agents.Create(ctx, agent))

		err = agencies.Delete(ctx, agency.ID)
		assert.ErrorIs(t, err, store.ErrConstraintViolation,
			"deleting an agency with agents should fail on the foreign key")
	})
}

func TestAgencyStoreStatistics(t *testing.T) {
	if !testdb.IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := testdb.NewTestDatabase(t)
	ctx := testContext(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		logger := testLogger()
		agencies := postgres.NewPostgresAgencyStore(db, logger).WithTx(tx)

		empty, err := agencies.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Zero(t, empty.TotalAgencies, "empty store yields the all-zero aggregate")
		assert.Zero(t, empty.TotalAgents)
		assert.Zero(t, empty.TotalProperties)
		assert.Zero(t, empty.SoldProperties)

		require.NoError(t, agencies.Create(ctx, mustNewAgency(t, "Villa Realty")))
		require.NoError(t, agencies.Create(ctx, mustNewAgency(t, "Oceanfront Group")))

		stats, err := agencies.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalAgencies)
	})
}
