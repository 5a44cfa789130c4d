// Package sqlitefiller is a worked example of an ihtcache.Filler backed by
// a real external collaborator: a SQLite table reached through
// database/sql and github.com/mattn/go-sqlite3. It exists to exercise the
// filler contract (C7) against a concrete store, the way the reference
// codebase's router package reaches into its own SQLite-backed pool-address
// table via mustDB/addr20.
package sqlitefiller

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps a *sql.DB holding a single fixed-width key/value table and
// produces an ihtcache.Filler closure over it.
type Store struct {
	db        *sql.DB
	table     string
	valueSize int
}

// Open opens (or creates) a SQLite database at path and ensures the given
// table exists with a BLOB key / BLOB value schema. The schema does not
// limit value width; the Filler rejects rows whose value is not exactly
// valueSize bytes. Mirrors router.mustDB's "open, ping, panic on failure to
// connect" shape, but surfaces errors instead of panicking — this is a
// library, not a one-shot bootstrap script.
func Open(path, table string, valueSize int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	schema := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (k BLOB PRIMARY KEY, v BLOB NOT NULL)`,
		table,
	)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, table: table, valueSize: valueSize}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Put writes or replaces the row for key.
func (s *Store) Put(key, value []byte) error {
	q := fmt.Sprintf(`INSERT OR REPLACE INTO %s (k, v) VALUES (?, ?)`, s.table)
	_, err := s.db.Exec(q, key, value)
	return err
}

// Filler returns an ihtcache.Filler-shaped closure that looks up key in the
// store's table and copies the stored value into out, returning false (with
// no error surfaced to the cache, per the filler contract) on a missing row
// or any query error.
func (s *Store) Filler() func(ctx any, key []byte, out []byte) bool {
	q := fmt.Sprintf(`SELECT v FROM %s WHERE k = ? LIMIT 1`, s.table)
	return func(_ any, key []byte, out []byte) bool {
		var value []byte
		row := s.db.QueryRow(q, key)
		if err := row.Scan(&value); err != nil {
			return false
		}
		if len(value) != s.valueSize {
			return false
		}
		copy(out, value)
		return true
	}
}
