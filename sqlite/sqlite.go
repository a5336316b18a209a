// Package sqlite exports a built corpus to a SQLite database for ad-hoc
// querying outside the generated site.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds on lock contention instead of failing immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS builds (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			documents INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			document_number TEXT NOT NULL,
			page_count INTEGER NOT NULL DEFAULT 0,
			document_type TEXT NOT NULL DEFAULT '',
			date_key TEXT NOT NULL DEFAULT '',
			folders TEXT NOT NULL DEFAULT '',
			full_text TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS entities (
			document_key TEXT NOT NULL REFERENCES documents(key) ON DELETE CASCADE,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (document_key, category, name)
		);

		CREATE INDEX IF NOT EXISTS idx_entities_category_name ON entities(category, name);
		CREATE INDEX IF NOT EXISTS idx_documents_type ON documents(document_type);
		CREATE INDEX IF NOT EXISTS idx_documents_date_key ON documents(date_key);
	`

	_, err := db.db.Exec(schema)
	return err
}
