// Package db owns the local SQLite record store: opening the database file,
// bootstrapping the schema, seeding default rows, and the shared query
// surface the domain repositories are built on.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DateLayout is the calendar-date format stored in the database. Dates are
// kept as plain strings and compared as strings, matching SQLite's
// CURRENT_DATE representation.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Querier is the query surface shared by *sql.DB and *sql.Tx. Repositories
// accept a Querier so they never own the connection themselves.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Open opens (creating if absent) the database file at path and verifies the
// connection. The handle is capped at a single open connection: the store has
// exactly one operator, and one connection keeps in-memory test databases
// coherent as well.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	return conn, nil
}

// MaxRowID returns the largest internal row id currently present in table,
// or 0 when the table is empty. Business identifiers are derived from this
// value at generation time.
func MaxRowID(ctx context.Context, q Querier, table string) (int64, error) {
	var max int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(id), 0) FROM %s", table)
	if err := q.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("max row id for %s: %w", table, err)
	}
	return max, nil
}
