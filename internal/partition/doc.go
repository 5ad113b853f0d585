// Package partition implements the two Bader steepest-ascent
// algorithms — on-grid and near-grid — that assign every non-vacuum
// voxel of a Density to the local maximum its ascent path terminates
// at, producing a voxelmap.VoxelMap.
//
// Both partitioners walk the grid with a worker pool sized to the
// configured thread count (0 meaning all available cores), writing
// into a shared voxel-index-keyed map. The near-grid method follows
// its assignment pass with a refinement pass over basin-boundary
// voxels, repeated until a full sweep makes no further changes.
//
// Plateaus are not merged: on-grid accepts any voxel with no strictly
// higher neighbor as a maximum, and near-grid accepts any voxel whose
// rounded gradient step is zero, so a flat region can yield several
// adjacent maxima.
package partition
