// Package testdb provides utilities for database integration testing. It
// connects through the same provider production code uses, bootstraps the
// embedded schema, and offers transaction and cleanup helpers so tests stay
// isolated. Integration tests are skipped unless DATABASE_URL is set.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/config"
	"github.com/alienx5499/property-portal/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return len(os.Getenv("DATABASE_URL")) > 0
}

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and PORTAL_TEST_DB_URL environment variables
// in that order, returning the first non-empty value.
func GetTestDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("PORTAL_TEST_DB_URL")
	}
	return dbURL
}

// NewTestDatabase connects to the integration test database through the
// production provider, bootstraps the embedded schema, and registers a
// cleanup that closes the pool when the test finishes. Callers must have
// checked IsIntegrationTestEnvironment first.
func NewTestDatabase(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	require.NotEmpty(t, dbURL, "DATABASE_URL must be set for integration tests")

	cfg := config.DatabaseConfig{
		URL:             dbURL,
		MaintenanceURL:  dbURL,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5,
	}

	provider := postgres.NewProvider(cfg, slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := provider.Connect(ctx)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(provider.Close)

	require.NoError(t, provider.InitializeSchema(ctx, postgres.Schema),
		"Failed to bootstrap test schema")

	return db
}

// WithTx executes a test function within a transaction, automatically rolling
// back after the test completes. This ensures test isolation and prevents
// side effects.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// ResetTables deletes every row from the given tables, children first.
// Callers order the list so foreign keys do not block the deletes.
func ResetTables(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	for _, table := range tables {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err, "Failed to reset table %s", table)
	}
}
