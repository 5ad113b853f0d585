package density

import "errors"

// ErrSizeMismatch is returned when the flattened data array's length
// does not equal the grid's total voxel count.
var ErrSizeMismatch = errors.New("density: data length does not match grid size")
