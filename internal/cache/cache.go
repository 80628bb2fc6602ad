// Package cache implements the content-addressed compile cache: a
// persistent table of (source+options hash) -> emitted target text,
// backed by an embedded, pure-Go sqlite database. It mirrors the
// teacher's ext.Cache in spirit — key on an input fingerprint, skip
// rebuilding when the fingerprint repeats — but keyed on compile inputs
// and backed by a real table instead of files on disk.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache is a compile-result cache backed by a sqlite database at path.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening compile cache %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS compiled (
	key  TEXT PRIMARY KEY,
	text TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing compile cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key fingerprints a compile unit: the source text and every option that
// affects its emitted output.
func Key(source, tab string) string {
	h := sha256.New()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(tab))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached target text for key, if present.
func (c *Cache) Get(key string) (string, bool, error) {
	var text string
	err := c.db.QueryRow(`SELECT text FROM compiled WHERE key = ?`, key).Scan(&text)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading compile cache: %w", err)
	}
	return text, true, nil
}

// Put stores text under key, overwriting any previous entry — a cache
// entry only ever needs to record the latest compile of a given key,
// since the key is a pure function of the inputs.
func (c *Cache) Put(key, text string) error {
	_, err := c.db.Exec(
		`INSERT INTO compiled (key, text) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET text = excluded.text`,
		key, text,
	)
	if err != nil {
		return fmt.Errorf("writing compile cache: %w", err)
	}
	return nil
}
