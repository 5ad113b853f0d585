package grid

// Size is the voxel count along each axis of a periodic grid, plus the
// precomputed, overflow-checked total voxel count.
type Size struct {
	X, Y, Z int
	Total   int
}

// boundary is a voxel's position along one axis: interior (neither
// first nor last index), first (index 0, wraps on a -1 step), or last
// (index N-1, wraps on a +1 step).
type boundary int

const (
	boundaryInterior boundary = 0
	boundaryLast     boundary = 1
	boundaryFirst    boundary = 2
)

// ShiftTable holds, for every voxel, which of the 27 boundary classes
// it falls into, and for every class, the 27 signed linear offsets
// (one per 3x3x3 stencil position, center included) that reach each
// neighbor of a voxel in that class.
type ShiftTable struct {
	size    Size
	class   []uint8
	offsets [27][27]int
}
