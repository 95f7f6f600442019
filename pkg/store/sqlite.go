package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// NewSQLite returns a medium backed by a single-file sqlite database at path.
// It honors the same flat key contract as the diskv medium, so data moved
// between backends keeps its namespace.
func NewSQLite(path string) (Medium, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ensure kv table: %w", err)
	}
	return &sqliteMedium{db: db}, nil
}

type sqliteMedium struct {
	db *sql.DB
}

func (m *sqliteMedium) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := m.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (m *sqliteMedium) Write(key string, value []byte) error {
	_, err := m.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

func (m *sqliteMedium) Erase(key string) error {
	_, err := m.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (m *sqliteMedium) Keys(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (m *sqliteMedium) Close() error {
	return m.db.Close()
}
