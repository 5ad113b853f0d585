package lattice

import "errors"

// ErrSingularLattice is returned when the three cell vectors do not span
// 3-space (zero or near-zero cell volume), so no cartesian<->fractional
// transform exists.
var ErrSingularLattice = errors.New("lattice: cell vectors are singular (zero volume)")
