package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveHistogramsWritesFiles(t *testing.T) {
	dir := t.TempDir()
	s := Summary{
		Atoms: []AtomResult{
			{Charge: 1, Volume: 10},
			{Charge: 2, Volume: 20},
			{Charge: 3, Volume: 30},
		},
	}
	chargePath := filepath.Join(dir, "charge.png")
	volumePath := filepath.Join(dir, "volume.png")

	require.NoError(t, SaveHistograms(s, chargePath, volumePath))

	for _, p := range []string{chargePath, volumePath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
