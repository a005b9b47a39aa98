// Package storage is the durable key-value accessor the rest of the
// application persists through.
//
// ────────────────────────────────────────────────────────────────────
// LEARNING NOTE — why a key-value table instead of relational tables?
// ────────────────────────────────────────────────────────────────────
// YoLearn is a local-first demo: every collection the app owns is small
// (a handful of skills, matches, notifications for one user) and is
// always read and written as a whole, exactly like a browser's
// localStorage entry. Modelling that as one SQLite table of
// (key, JSON blob) pairs keeps the accessor contract tiny — save, load,
// remove — while still giving us a real durable file that survives
// restarts. If a collection ever needs per-row queries it can graduate
// to its own table without touching the callers.
//
// modernc.org/sqlite is a pure-Go port of SQLite — no C compiler
// needed, no CGo, cross-compiles cleanly. The driver registers itself
// under the name "sqlite".
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// Namespaced keys for every logical collection. Each collection owns
// exactly one key; new keys must not collide with these.
const (
	KeyAppState      = "yolearn:app-state"
	KeyUser          = "yolearn:user"
	KeyUserSkills    = "yolearn:user-skills"
	KeyMatches       = "yolearn:user-matches"
	KeyNotifications = "yolearn:user-notifications"
)

// Store wraps a SQLite file as a durable string-keyed JSON store.
//
// All failures degrade rather than propagate: a rejected write logs and
// returns false, a missing or corrupt entry loads as the caller's
// default. Callers never see an error from this package.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at dsn and ensures the schema.
//
// Recommended DSN formats for modernc.org/sqlite:
//   - File:  "yolearn.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
//   - Tests: "file:testXYZ?mode=memory&cache=shared"
func Open(dsn string) (*Store, error) {
	// sql.Open does not connect yet — the first real connection is made
	// lazily on the first query.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save serializes v as JSON and writes it under key, replacing any
// previous value. It returns false — and logs, never panics — when the
// value cannot be encoded or the write is rejected.
func (s *Store) Save(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("storage: encode value", "key", key, "err", err)
		return false
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		slog.Error("storage: save", "key", key, "err", err)
		return false
	}
	return true
}

// Load reads the value stored under key into a fresh T. A missing key,
// an unreachable store, or a value that no longer parses (corruption,
// schema drift from an older version) all degrade to def — "as if never
// written", never a crash.
func Load[T any](s *Store, key string, def T) T {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("storage: load", "key", key, "err", err)
		}
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("storage: discarding malformed entry", "key", key, "err", err)
		return def
	}
	return v
}

// Remove deletes the entry under key. Removing an absent key is not an
// error; false means the delete itself was rejected.
func (s *Store) Remove(key string) bool {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		slog.Error("storage: remove", "key", key, "err", err)
		return false
	}
	return true
}
