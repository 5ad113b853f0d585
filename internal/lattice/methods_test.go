package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubic(a float64) Matrix {
	return Matrix{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

func TestDotVM(t *testing.T) {
	out := DotVM(Vector{1, 2, 3}, Matrix{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})
	assert.Equal(t, Vector{1, 4, 9}, out)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 14.0, Dot(Vector{1, 2, 3}, Vector{1, 2, 3}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 13.0, Norm(Vector{3, 4, 12}))
}

func TestNewCubic(t *testing.T) {
	l, err := New(cubic(3))
	require.NoError(t, err)
	assert.InDelta(t, 27.0, l.Volume, 1e-9)
	assert.InDelta(t, 1.0/3.0, l.ToFractional[0][0], 1e-9)
}

func TestNewSingular(t *testing.T) {
	_, err := New(Matrix{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, ErrSingularLattice)
}

func TestVoxelVolumeScaling(t *testing.T) {
	cell := Matrix{{3, 3, 0}, {-3, 3, 0}, {1, 1, 1}}
	full, err := New(cell)
	require.NoError(t, err)
	voxel, err := Voxel(cell, 4, 4, 4)
	require.NoError(t, err)
	assert.InDelta(t, full.Volume/64.0, voxel.Volume, 1e-9)
}

func TestShiftMatrixCenterIsZero(t *testing.T) {
	l, err := New(cubic(2))
	require.NoError(t, err)
	assert.Equal(t, Vector{0, 0, 0}, l.ShiftMatrix[13])
}

func TestShiftMatrixAntiparallel(t *testing.T) {
	l, err := New(Matrix{{3, 3, 0}, {-3, 3, 0}, {1, 1, 1}})
	require.NoError(t, err)
	for i := 0; i < 13; i++ {
		opp := l.ShiftMatrix[26-i]
		got := l.ShiftMatrix[i]
		for k := 0; k < 3; k++ {
			assert.InDelta(t, -opp[k], got[k], 1e-9)
		}
	}
}

func TestMetricInverseCubicIsScaledIdentity(t *testing.T) {
	l, err := New(cubic(2))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, l.MetricInverse[0][0], 1e-9)
	assert.InDelta(t, 0.25, l.MetricInverse[1][1], 1e-9)
	assert.InDelta(t, 0.25, l.MetricInverse[2][2], 1e-9)
	assert.InDelta(t, 0.0, l.MetricInverse[0][1], 1e-9)
	assert.InDelta(t, 0.0, l.MetricInverse[1][2], 1e-9)
}

func TestMetricInverseNonOrthogonalChangesDirection(t *testing.T) {
	l, err := New(Matrix{{3, 3, 0}, {-3, 3, 0}, {1, 1, 1}})
	require.NoError(t, err)

	// A round trip through ToCartesian and back through ToFractional is
	// the identity for any invertible matrix and would leave this
	// vector unchanged; raising it through the metric tensor must not.
	transformed := DotVM(Vector{1, 0, 0}, l.MetricInverse)
	assert.NotEqual(t, Vector{1, 0, 0}, transformed)

	// MetricInverse is symmetric by construction (ToFractionalᵀ·ToFractional).
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, l.MetricInverse[i][j], l.MetricInverse[j][i], 1e-9)
		}
	}
}

func TestMaxDistance(t *testing.T) {
	l, err := New(cubic(2))
	require.NoError(t, err)
	assert.InDelta(t, l.MaxDistance(), l.DistanceMatrix[0], 1e-9)
	for _, d := range l.DistanceMatrix {
		assert.LessOrEqual(t, d, l.MaxDistance()+1e-9)
	}
}
