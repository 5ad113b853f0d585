package resultcache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// Key derives the cache key for a partitioning run from the input
// file's identity (path, size, modification time) and the run
// parameters that affect its output (method, vacuum tolerance). Any
// change to the file or these parameters produces a different key, so
// a stale cache entry is simply never looked up again rather than
// explicitly invalidated.
func Key(path string, size int64, mtime time.Time, method string, vacuumTolerance *float64) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%s|", path, size, mtime.UnixNano(), method)
	if vacuumTolerance != nil {
		fmt.Fprintf(h, "%g", *vacuumTolerance)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached payload for key, or ErrNotFound if absent.
func (c *Cache) Get(key string) (string, error) {
	var payload string
	err := c.QueryRow(`SELECT payload FROM result_cache WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resultcache: get %s: %w", key, err)
	}
	return payload, nil
}

// Put stores payload under key, overwriting any existing entry.
func (c *Cache) Put(key, payload string) error {
	_, err := c.Exec(
		`INSERT INTO result_cache (key, payload, created_at_unix) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at_unix = excluded.created_at_unix`,
		key, payload, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("resultcache: put %s: %w", key, err)
	}
	return nil
}
