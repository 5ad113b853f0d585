package cube

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a minimal 2x2x2 cube file: one atom, unit voxel vectors, z-fastest
// values 0..7.
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

func TestReadMinimalCube(t *testing.T) {
	res, err := Read(strings.NewReader(minimalCube))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Nx)
	assert.Equal(t, 2, res.Ny)
	assert.Equal(t, 2, res.Nz)
	assert.False(t, res.ZYXFormat)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, res.Values)
	require.Len(t, res.Atoms, 1)
	assert.Equal(t, 1, res.Atoms[0].Number)
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, res.Atoms[0].Position)
	assert.Equal(t, [3][3]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, res.Cell)
}

func TestReadCubeNegativeAtomCount(t *testing.T) {
	withMO := strings.Replace(minimalCube, "1 0.0 0.0 0.0\n", "-1 0.0 0.0 0.0\n", 1)
	res, err := Read(strings.NewReader(withMO))
	require.NoError(t, err)
	assert.Len(t, res.Atoms, 1)
}

func TestReadCubeTruncated(t *testing.T) {
	truncated := "comment\ncomment\n1 0 0 0\n2 1 0 0\n"
	_, err := Read(strings.NewReader(truncated))
	assert.ErrorIs(t, err, ErrTruncated)
}
