package grid

import "errors"

// ErrInvalidDimensions is returned when a grid axis length is not
// positive.
var ErrInvalidDimensions = errors.New("grid: dimensions must be positive")

// ErrGridOverflow is returned when Nx*Ny*Nz does not fit in a platform
// int, which would otherwise silently wrap into a bogus voxel count.
var ErrGridOverflow = errors.New("grid: voxel count overflows int")
