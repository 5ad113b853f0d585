package voxelmap

// VoxelMap is the per-voxel result of a partitioning run: Map[p] is the
// maxima value that voxel p was assigned to, or a negative sentinel if
// p was excluded as vacuum. Maxima lists the distinct maxima in
// ascending order; when vacuum is present, Maxima[0] is the negative
// sentinel and the real maxima start at Maxima[1].
type VoxelMap struct {
	Map    []int
	Maxima []int

	index map[int]int
}
