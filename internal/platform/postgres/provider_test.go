package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienx5499/property-portal/internal/config"
)

// schemaConn is a single-connection fake driver that mimics the Postgres
// transaction abort contract: a failed statement poisons the transaction,
// every later statement fails with SQLSTATE 25P02 until a ROLLBACK TO
// SAVEPOINT, and a COMMIT issued on a poisoned transaction is accepted by
// the server as a rollback.
type schemaConn struct {
	failPrefix string

	inTx    bool
	aborted bool

	applied         []string
	committed       bool
	commitSwallowed bool
}

var _ driver.ExecerContext = (*schemaConn)(nil)

func (c *schemaConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *schemaConn) Close() error { return nil }

func (c *schemaConn) Begin() (driver.Tx, error) {
	c.inTx = true
	return &schemaTx{conn: c}, nil
}

func (c *schemaConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	stmt := strings.TrimSpace(query)

	if c.aborted && stmt != "ROLLBACK TO SAVEPOINT schema_statement" {
		return nil, errors.New("current transaction is aborted, commands ignored until end of transaction block (SQLSTATE 25P02)")
	}

	switch stmt {
	case "SAVEPOINT schema_statement",
		"RELEASE SAVEPOINT schema_statement":
		return driver.ResultNoRows, nil
	case "ROLLBACK TO SAVEPOINT schema_statement":
		c.aborted = false
		return driver.ResultNoRows, nil
	}

	if c.failPrefix != "" && strings.HasPrefix(stmt, c.failPrefix) {
		if c.inTx {
			c.aborted = true
		}
		return nil, errors.New("cannot drop table: other objects depend on it (SQLSTATE 2BP01)")
	}

	c.applied = append(c.applied, firstLine(stmt))
	return driver.ResultNoRows, nil
}

type schemaTx struct {
	conn *schemaConn
}

func (t *schemaTx) Commit() error {
	t.conn.inTx = false
	if t.conn.aborted {
		t.conn.aborted = false
		t.conn.commitSwallowed = true
		return nil
	}
	t.conn.committed = true
	return nil
}

func (t *schemaTx) Rollback() error {
	t.conn.inTx = false
	t.conn.aborted = false
	return nil
}

type schemaDriver struct {
	conn *schemaConn
}

func (d *schemaDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

var schemaTestSequence int

func newSchemaTestProvider(t *testing.T, conn *schemaConn) *Provider {
	t.Helper()

	schemaTestSequence++
	name := fmt.Sprintf("schema_fake_%d", schemaTestSequence)
	sql.Register(name, &schemaDriver{conn: conn})

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := NewProvider(config.DatabaseConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.db = db
	return p
}

func TestInitializeSchemaToleratesMidBatchFailure(t *testing.T) {
	conn := &schemaConn{failPrefix: "DROP TABLE offers"}
	p := newSchemaTestProvider(t, conn)

	ddl := `
		DROP TABLE offers;
		DROP TABLE agencies;
		CREATE TABLE agencies (id BIGSERIAL PRIMARY KEY);
		CREATE INDEX idx_agencies_name ON agencies (id)
	`

	require.NoError(t, p.InitializeSchema(context.Background(), ddl))

	assert.Equal(t, []string{
		"DROP TABLE agencies",
		"CREATE TABLE agencies (id BIGSERIAL PRIMARY KEY)",
		"CREATE INDEX idx_agencies_name ON agencies (id)",
	}, conn.applied, "statements after the tolerated failure must still apply")
	assert.True(t, conn.committed, "the batch must end in a real commit")
	assert.False(t, conn.commitSwallowed,
		"the commit must not land on a poisoned transaction")
}

func TestInitializeSchemaAbortsOnFatalStatement(t *testing.T) {
	conn := &schemaConn{failPrefix: "INSERT"}
	p := newSchemaTestProvider(t, conn)

	ddl := `
		CREATE TABLE agencies (id BIGSERIAL PRIMARY KEY);
		INSERT INTO agencies DEFAULT VALUES;
		CREATE INDEX idx_agencies_name ON agencies (id)
	`

	err := p.InitializeSchema(context.Background(), ddl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error executing schema statement")

	assert.Equal(t, []string{"CREATE TABLE agencies (id BIGSERIAL PRIMARY KEY)"}, conn.applied,
		"nothing after the fatal statement may run")
	assert.False(t, conn.committed, "a fatal statement must roll the batch back")
	assert.False(t, conn.inTx, "the transaction must be closed on failure")
}

func TestInitializeSchemaRequiresConnection(t *testing.T) {
	p := NewProvider(config.DatabaseConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := p.InitializeSchema(context.Background(), "CREATE TABLE agencies (id BIGSERIAL)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a connected provider")
}
