package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSizeOverflow(t *testing.T) {
	_, err := NewSize(2_100_000, 2_100_000, 2_100_000)
	assert.ErrorIs(t, err, ErrGridOverflow)
}

func TestNewSizeInvalid(t *testing.T) {
	_, err := NewSize(0, 4, 5)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewSizeTotal(t *testing.T) {
	s, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 60, s.Total)
}

func TestShiftTableBoundaryClasses(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	st := NewShiftTable(size)

	assert.Equal(t, uint8(26), st.Class(0))
	assert.Equal(t, uint8(13), st.Class(59))

	assert.Equal(t, 0, st.offsets[0][13])
	assert.Equal(t, -26, st.offsets[13][0])
}

func TestFullShiftInterior(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	st := NewShiftTable(size)

	want := [26]int{
		-26, -25, -24, -21, -20, -19, -16, -15, -14,
		-6, -5, -4, -1, 1, 4, 5, 6,
		14, 15, 16, 19, 20, 21, 24, 25, 26,
	}
	assert.Equal(t, want, st.FullShift(26))
}

func TestReducedShiftInterior(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	st := NewShiftTable(size)

	assert.Equal(t, [6]int{20, -20, 5, -5, 1, -1}, st.ReducedShift(26))
}

func TestGradientShiftInterior(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	st := NewShiftTable(size)

	assert.Equal(t, 1, st.GradientShift(26, [3]int{0, 0, 1}))
	assert.Equal(t, 20, st.GradientShift(26, [3]int{1, 0, 0}))
	assert.Equal(t, -5, st.GradientShift(26, [3]int{0, -1, 0}))
}

// TestLastCornerWrapsAllThreeAxes exercises the voxel sitting at the
// last index on every axis: stepping +1 on any axis must wrap back to
// that axis's first index, so the all-positive stencil neighbor
// (k=26) differs from the unwrapped interior sum (+26) by one full
// extent of each axis (60 + 20 + 5), giving -59.
func TestLastCornerWrapsAllThreeAxes(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	st := NewShiftTable(size)

	last := size.Index(2, 3, 4)
	require.Equal(t, 59, last)
	require.Equal(t, uint8(13), st.Class(last))

	full := st.FullShift(last)
	assert.Equal(t, -26, full[0])
	assert.Equal(t, -59, full[25])
}

func TestClassIsSymmetricAcrossOppositeCorners(t *testing.T) {
	size, err := NewSize(4, 4, 4)
	require.NoError(t, err)
	st := NewShiftTable(size)

	first := size.Index(0, 0, 0)
	last := size.Index(3, 3, 3)
	assert.Equal(t, uint8(26), st.Class(first))
	assert.Equal(t, uint8(13), st.Class(last))
}

func TestIndexRoundTrips(t *testing.T) {
	size, err := NewSize(3, 4, 5)
	require.NoError(t, err)
	p := 0
	for ix := 0; ix < size.X; ix++ {
		for iy := 0; iy < size.Y; iy++ {
			for iz := 0; iz < size.Z; iz++ {
				assert.Equal(t, p, size.Index(ix, iy, iz))
				p++
			}
		}
	}
}
