package density

import (
	"github.com/banshee-data/bader/internal/grid"
	"github.com/banshee-data/bader/internal/lattice"
)

// New builds a Density over values, laid out on an (nx, ny, nz) grid
// inside the cartesian cell, computing the per-voxel lattice and the
// shift table used to walk it. vacuumTolerance is nil when no vacuum
// cut-off was requested.
func New(values []float64, nx, ny, nz int, cell lattice.Matrix, vacuumTolerance *float64, voxelOrigin lattice.Vector) (*Density, error) {
	size, err := grid.NewSize(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	if len(values) != size.Total {
		return nil, ErrSizeMismatch
	}

	cellLattice, err := lattice.New(cell)
	if err != nil {
		return nil, err
	}
	voxelLattice, err := lattice.Voxel(cell, nx, ny, nz)
	if err != nil {
		return nil, err
	}

	return &Density{
		Values:          values,
		Size:            size,
		CellLattice:     cellLattice,
		VoxelLattice:    voxelLattice,
		VoxelOrigin:     voxelOrigin,
		VacuumTolerance: vacuumTolerance,
		shift:           grid.NewShiftTable(size),
	}, nil
}

// Index flattens a 3D voxel coordinate z-fastest.
func (d *Density) Index(ix, iy, iz int) int {
	return d.Size.Index(ix, iy, iz)
}

// Coordinates recovers the (ix, iy, iz) voxel coordinate for a
// flattened index, z-fastest.
func (d *Density) Coordinates(p int) (ix, iy, iz int) {
	iz = p % d.Size.Z
	rest := p / d.Size.Z
	iy = rest % d.Size.Y
	ix = rest / d.Size.Y
	return
}

// At returns the charge density at voxel p.
func (d *Density) At(p int) float64 {
	return d.Values[p]
}

// IsVacuum reports whether voxel p's density falls below the vacuum
// tolerance. A nil tolerance means no voxel is ever vacuum.
func (d *Density) IsVacuum(p int) bool {
	if d.VacuumTolerance == nil {
		return false
	}
	return d.Values[p] < *d.VacuumTolerance
}

// Cartesian returns the cartesian position of voxel p's origin corner.
func (d *Density) Cartesian(p int) lattice.Vector {
	ix, iy, iz := d.Coordinates(p)
	frac := lattice.Vector{
		d.VoxelOrigin[0] + float64(ix),
		d.VoxelOrigin[1] + float64(iy),
		d.VoxelOrigin[2] + float64(iz),
	}
	return lattice.DotVM(frac, d.VoxelLattice.ToCartesian)
}

// FullShift returns the 26 signed offsets, one per 3x3x3 stencil
// neighbor excluding the center, that reach every neighbor of voxel p.
func (d *Density) FullShift(p int) [26]int {
	return d.shift.FullShift(p)
}

// ReducedShift returns the six face-neighbor offsets of voxel p, in
// +x, -x, +y, -y, +z, -z order.
func (d *Density) ReducedShift(p int) [6]int {
	return d.shift.ReducedShift(p)
}

// GradientShift returns the signed offset of voxel p's neighbor in
// stencil direction g.
func (d *Density) GradientShift(p int, g [3]int) int {
	return d.shift.GradientShift(p, g)
}
