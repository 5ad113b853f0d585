package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/lattice"
)

// triclinicPeakDensity builds a single-maximum density on an NxNxN grid
// whose voxel lattice is the non-orthogonal cell from
// internal/lattice/methods_test.go ({{3,3,0},{-3,3,0},{1,1,1}}) rather
// than a cubic one. The bowl is a true cartesian-distance paraboloid
// (pulled back through the voxel lattice's ToCartesian map), so unlike
// singlePeakDensity its steepest-ascent direction in fractional grid
// coordinates is not simply its own per-axis finite difference — an
// incorrect near-grid gradient transform that ignores the cell's shear
// would misdirect the walk on this grid even though it has a unique,
// well-behaved maximum.
func triclinicPeakDensity(t *testing.T, n int) (*density.Density, int) {
	t.Helper()
	c := n / 2

	cellFull := lattice.Matrix{
		{3 * float64(n), 3 * float64(n), 0},
		{-3 * float64(n), 3 * float64(n), 0},
		{float64(n), float64(n), float64(n)},
	}
	voxelLattice, err := lattice.Voxel(cellFull, n, n, n)
	require.NoError(t, err)

	center := lattice.DotVM(lattice.Vector{float64(c), float64(c), float64(c)}, voxelLattice.ToCartesian)

	values := make([]float64, n*n*n)
	p := 0
	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			for iz := 0; iz < n; iz++ {
				cart := lattice.DotVM(lattice.Vector{float64(ix), float64(iy), float64(iz)}, voxelLattice.ToCartesian)
				dx, dy, dz := cart[0]-center[0], cart[1]-center[1], cart[2]-center[2]
				values[p] = 1000 - (dx*dx + dy*dy + dz*dz)
				p++
			}
		}
	}

	d, err := density.New(values, n, n, n, cellFull, nil, lattice.Vector{0, 0, 0})
	require.NoError(t, err)
	return d, d.Index(c, c, c)
}

func TestNearGridSingleBasinCoversWholeGridTriclinic(t *testing.T) {
	d, center := triclinicPeakDensity(t, 7)
	vm, err := Run(d, NearGrid, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, vm.BasinCount())
	assert.Equal(t, center, vm.Map[center])
	for p, basin := range vm.Map {
		assert.Equal(t, center, basin, "voxel %d not assigned to the global maximum on a non-orthogonal cell", p)
	}
}

func TestNearGridDeterministicAcrossThreadCountsTriclinic(t *testing.T) {
	d, _ := triclinicPeakDensity(t, 7)
	vm1, err := Run(d, NearGrid, 1, nil)
	require.NoError(t, err)
	vm2, err := Run(d, NearGrid, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, vm1.Map, vm2.Map)
}
