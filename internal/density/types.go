package density

import (
	"github.com/banshee-data/bader/internal/grid"
	"github.com/banshee-data/bader/internal/lattice"
)

// Density is a read-only view over a flattened charge-density array:
// the raw values, the grid they're laid out on, the cell and per-voxel
// lattices, the offset of voxel (0,0,0) in fractional voxel units, and
// an optional
// vacuum cut-off below which a voxel's charge is excluded from every
// basin.
type Density struct {
	Values          []float64
	Size            grid.Size
	CellLattice     lattice.Lattice
	VoxelLattice    lattice.Lattice
	VoxelOrigin     lattice.Vector
	VacuumTolerance *float64

	shift *grid.ShiftTable
}
