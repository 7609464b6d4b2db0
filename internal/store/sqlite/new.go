package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"fitness-agent/internal/store"
	"fitness-agent/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT NOT NULL,
	collection TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_records_collection ON records (collection);`

const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type implStore struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (creating if needed) the sqlite database at path. Use ":memory:"
// for a throwaway database.
func Open(ctx context.Context, path string, l log.Logger) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, store.Unavailable("open", "", err)
	}
	// One connection: sqlite serializes writers and ":memory:" is per-connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, store.Unavailable("open", "", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, store.Unavailable("migrate", "", err)
	}
	return New(db, l), nil
}

// New wraps an already opened database. The records table must exist.
func New(db *sql.DB, l log.Logger) store.Store {
	if db == nil {
		panic("store/sqlite: db is required")
	}
	return &implStore{db: db, l: l}
}

func (s *implStore) Close() error {
	return s.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *implStore) dsn(method string) string {
	return fmt.Sprintf("store/sqlite.%s", method)
}
