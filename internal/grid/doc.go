// Package grid encodes the flattened layout of an (Nx, Ny, Nz) periodic
// voxel grid and the 27x27 table of signed linear offsets that lets a
// partitioner reach any of a voxel's 26 neighbors (or itself) without
// modular arithmetic in the inner loop.
//
// Every voxel is classified into one of 27 boundary classes at
// construction (one per combination of {first, interior, last} along
// each axis); offsets are generated from the wrap rules implied by that
// classification rather than hand-enumerated, per the periodic-grid
// first-principles construction this package follows.
package grid
