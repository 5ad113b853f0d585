package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/bader/internal/config"
)

// a minimal 2x2x2 cube file: one atom at (0.5, 0.5, 0.5), unit voxel
// vectors, z-fastest values 0..7 so voxel 7 is the unique maximum and
// every other voxel climbs toward it.
const minimalCube = `comment line one
comment line two
1 0.0 0.0 0.0
2 1.0 0.0 0.0
2 0.0 1.0 0.0
2 0.0 0.0 1.0
1 0.0 0.5 0.5 0.5
0 1 2 3
4 5 6 7
`

func writeCubeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.cube")
	require.NoError(t, os.WriteFile(path, []byte(minimalCube), 0o644))
	return path
}

func TestRunProducesSingleBasinTable(t *testing.T) {
	path := writeCubeFixture(t)
	cfg, err := config.Parse("bader", []string{"-m", "ongrid", "-J", "1", path})
	require.NoError(t, err)

	var out, diag bytes.Buffer
	require.NoError(t, run(cfg, &out, &diag))

	table := out.String()
	assert.Contains(t, table, "method ongrid")
	assert.Contains(t, table, "28.000000")
	assert.Contains(t, table, "8.000000")
}

func TestRunUnknownFileFails(t *testing.T) {
	cfg, err := config.Parse("bader", []string{"-m", "ongrid", filepath.Join(t.TempDir(), "missing.cube")})
	require.NoError(t, err)

	var out, diag bytes.Buffer
	err = run(cfg, &out, &diag)
	assert.Error(t, err)
}

func TestRunCachesResults(t *testing.T) {
	path := writeCubeFixture(t)
	t.Setenv("BADER_CACHE_DIR", t.TempDir())

	cfg, err := config.Parse("bader", []string{"-m", "ongrid", "-J", "1", path})
	require.NoError(t, err)

	var first, second, diag bytes.Buffer
	require.NoError(t, run(cfg, &first, &diag))
	require.NoError(t, run(cfg, &second, &diag))

	assert.Equal(t, first.String(), second.String())
}

func TestExitUsageReportsMissingFile(t *testing.T) {
	msg := exitUsage(nil)
	assert.True(t, strings.Contains(msg, "file is required"))
}
