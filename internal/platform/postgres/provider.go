package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/alienx5499/property-portal/internal/config"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
)

// Provider manages the lifetime of the database connection pool. It is
// constructed from an explicit configuration struct rather than process-wide
// state, so tests can run isolated instances side by side.
type Provider struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger
	db     *sql.DB
}

// NewProvider creates a connection provider for the given database
// configuration. If logger is nil, the default logger is used.
func NewProvider(cfg config.DatabaseConfig, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "db_provider")),
	}
}

// Connect opens the connection pool for the target database, configures its
// limits, and verifies liveness with a ping. Connectivity faults surface as
// hard failures the caller must handle.
func (p *Provider) Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", p.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(p.cfg.MaxOpenConns)
	db.SetMaxIdleConns(p.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(p.cfg.ConnMaxLifetime) * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		closeQuietly(db, p.logger)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p.logger.Info("database connection established")
	p.db = db
	return db, nil
}

// DB returns the connection pool opened by Connect, or nil before Connect
// succeeds.
func (p *Provider) DB() *sql.DB {
	return p.db
}

// Close releases the connection pool. Close failures are swallowed and
// logged, never propagated, so a caller's primary error is not masked by a
// secondary one.
func (p *Provider) Close() {
	if p.db == nil {
		return
	}
	closeQuietly(p.db, p.logger)
	p.db = nil
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("error closing database connection",
			slog.String("error", err.Error()))
	}
}

// EnsureDatabase performs a server-level liveness check without selecting
// the target database, creating the target database when it is absent.
// Returns true only when this call created the database; false means it
// already existed. The probe connection is released on every path.
func (p *Provider) EnsureDatabase(ctx context.Context) (bool, error) {
	dbName, err := databaseName(p.cfg.URL)
	if err != nil {
		return false, err
	}

	probe, err := sql.Open("pgx", p.cfg.MaintenanceURL)
	if err != nil {
		return false, fmt.Errorf("failed to open server connection: %w", err)
	}
	defer closeQuietly(probe, p.logger)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := probe.PingContext(pingCtx); err != nil {
		p.logger.Error("database server probe failed",
			slog.String("error", err.Error()))
		return false, fmt.Errorf("failed to reach database server: %w", err)
	}

	// CREATE DATABASE has no IF NOT EXISTS; a concurrent creator raises
	// 42P04, which is the same outcome.
	created := false
	createStmt := "CREATE DATABASE " + pgx.Identifier{dbName}.Sanitize()
	if _, err := probe.ExecContext(ctx, createStmt); err != nil {
		if !isDuplicateDatabase(err) {
			p.logger.Error("failed to create database",
				slog.String("database", dbName),
				slog.String("error", err.Error()))
			return false, fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	} else {
		created = true
	}

	p.logger.Info("database server reachable",
		slog.String("database", dbName),
		slog.Bool("created", created))
	return created, nil
}

// databaseName extracts the database name from a connection URL.
func databaseName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("database URL %q has no database name", rawURL)
	}
	return name, nil
}

// InitializeSchema executes a semicolon-delimited batch of DDL statements
// inside a single transaction. Failures on statements whose normalized text
// contains "drop", "create table", or "create index" are tolerated so the
// batch can be re-run against an existing schema; any other statement
// failure abandons the whole run with no partial commit.
//
// Each statement runs under a savepoint. Postgres aborts the enclosing
// transaction on any statement error, so a tolerated failure must be rolled
// back to its savepoint before the batch can continue; without that, every
// later statement would fail with SQLSTATE 25P02 and the final commit would
// be silently accepted as a rollback.
func (p *Provider) InitializeSchema(ctx context.Context, ddl string) error {
	if p.db == nil {
		return fmt.Errorf("schema initialization requires a connected provider")
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			p.logger.Error("failed to roll back schema transaction",
				slog.String("error", rbErr.Error()))
		}
	}()

	for _, raw := range strings.Split(ddl, ";") {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}

		if _, err := tx.ExecContext(ctx, "SAVEPOINT schema_statement"); err != nil {
			return fmt.Errorf("failed to set schema savepoint: %w", err)
		}

		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if isTolerableSchemaStatement(stmt) {
				if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT schema_statement"); rbErr != nil {
					return fmt.Errorf("failed to recover from tolerated schema failure: %w", rbErr)
				}
				p.logger.Warn("ignoring failure of re-runnable schema statement",
					slog.String("statement", firstLine(stmt)),
					slog.String("error", err.Error()))
				continue
			}
			p.logger.Error("schema statement failed",
				slog.String("statement", firstLine(stmt)),
				slog.String("error", err.Error()))
			return fmt.Errorf("error executing schema statement: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT schema_statement"); err != nil {
			return fmt.Errorf("failed to release schema savepoint: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	committed = true

	p.logger.Info("database schema initialized")
	return nil
}

// isTolerableSchemaStatement reports whether a failed DDL statement may be
// skipped on re-run: dropped or created objects may simply already exist.
func isTolerableSchemaStatement(stmt string) bool {
	normalized := strings.ToLower(stmt)
	return strings.Contains(normalized, "drop") ||
		strings.Contains(normalized, "create table") ||
		strings.Contains(normalized, "create index")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
