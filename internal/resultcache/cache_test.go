package resultcache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	c := openTestCache(t)
	_, err := c.Get("nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutThenGet(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Put("k1", `{"atoms":[]}`))

	payload, err := c.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, `{"atoms":[]}`, payload)
}

func TestPutOverwritesExisting(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Put("k1", "first"))
	require.NoError(t, c.Put("k1", "second"))

	payload, err := c.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, "second", payload)
}

func TestKeyChangesWithInputs(t *testing.T) {
	mtime := time.Unix(1000, 0)
	tol := 1e-3
	base := Key("CHGCAR", 100, mtime, "neargrid", &tol)

	assert.NotEqual(t, base, Key("CHGCAR", 101, mtime, "neargrid", &tol), "size should affect key")
	assert.NotEqual(t, base, Key("CHGCAR", 100, mtime.Add(time.Second), "neargrid", &tol), "mtime should affect key")
	assert.NotEqual(t, base, Key("CHGCAR", 100, mtime, "ongrid", &tol), "method should affect key")
	assert.NotEqual(t, base, Key("CHGCAR", 100, mtime, "neargrid", nil), "vacuum tolerance should affect key")
	assert.Equal(t, base, Key("CHGCAR", 100, mtime, "neargrid", &tol), "identical inputs should be deterministic")
}
