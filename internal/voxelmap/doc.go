// Package voxelmap holds the per-voxel basin assignment produced by a
// partitioner — each voxel's owning maximum, or a negative sentinel for
// vacuum — and the reductions built on top of it: per-basin charge and
// volume accumulation, and the minimum distance from each atom to the
// boundary of its own basin.
package voxelmap
