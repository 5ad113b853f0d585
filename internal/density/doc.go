// Package density wraps a flattened charge-density array together with
// the grid and lattice geometry needed to walk it: voxel indexing, the
// per-voxel stencil shifts, and the per-voxel cartesian position.
package density
