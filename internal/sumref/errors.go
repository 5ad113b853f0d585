package sumref

import "errors"

// ErrNoReferences is returned by Sum when called with no reference
// files; callers should partition the primary file's own density
// instead of calling Sum at all.
var ErrNoReferences = errors.New("sumref: no reference files given")

// ErrTooManyReferences is returned for more than two reference files.
var ErrTooManyReferences = errors.New("sumref: at most two reference files are supported")

// ErrGridMismatch is returned when reference files disagree on grid
// dimensions.
var ErrGridMismatch = errors.New("sumref: reference files have mismatched grid dimensions")
