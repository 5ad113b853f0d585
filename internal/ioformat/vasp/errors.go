package vasp

import "errors"

// ErrTruncated is returned when the file ends before the header or
// density grid it declares is fully read.
var ErrTruncated = errors.New("vasp: file truncated before declared data ended")

// ErrNegativeScale is returned for a POSCAR scale factor given as a
// negative number (interpreted by VASP as a target cell volume rather
// than a linear scale), which this reader does not support.
var ErrNegativeScale = errors.New("vasp: negative (volume-target) scale factors are not supported")
