// Package sqlitedb stores converted examples in a SQLite database, next to
// the plain-text outputs.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	abst_slots TEXT NOT NULL,
	examples   INTEGER NOT NULL,
	da_hash    TEXT NOT NULL,
	text_hash  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS examples (
	run_id     TEXT NOT NULL REFERENCES runs(id),
	part       TEXT NOT NULL,
	idx        INTEGER NOT NULL,
	da         TEXT NOT NULL,
	delex_da   TEXT NOT NULL,
	text       TEXT NOT NULL,
	delex_text TEXT NOT NULL,
	absts      TEXT NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// Client wraps the database handle and exposes typed repositories.
type Client struct {
	db *sql.DB

	Runs     *RunRepository
	Examples *ExampleRepository
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Client, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema in %s: %w", path, err)
	}
	return &Client{
		db:       db,
		Runs:     &RunRepository{db: db},
		Examples: &ExampleRepository{db: db},
	}, nil
}

// Close releases the database.
func (c *Client) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
