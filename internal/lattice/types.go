package lattice

// Vector is a point or direction in 3-space, in either cartesian or
// fractional units depending on context.
type Vector [3]float64

// Matrix holds three row vectors — for a Lattice these are the cell
// vectors a, b, c.
type Matrix [3][3]float64

// Lattice describes a triclinic unit cell: the cartesian cell vectors,
// their cached inverse (cartesian -> fractional), the inverse metric
// tensor, the cell volume, the 27 cartesian translations of the
// periodic images (including the self shift), and the 13-entry table
// of minimum distances between opposing faces/edges/corners.
//
// MetricInverse is ToFractionalᵀ·ToFractional, the inverse of the
// Gram matrix of the cell vectors. A fractional-coordinate gradient
// computed by finite differences (a covariant one-form) must be
// multiplied through MetricInverse — not simply round-tripped through
// ToCartesian and back through ToFractional, which is the identity for
// any invertible matrix — to recover the contravariant direction that
// actually points toward steepest ascent in cartesian space. The two
// transforms only happen to coincide on an orthogonal cell, where
// MetricInverse is diagonal.
//
// ShiftMatrix is indexed the same way as the grid package's 3x3x3
// stencil: i = 9*(dx+1) + 3*(dy+1) + (dz+1) for (dx,dy,dz) in
// {-1,0,1}^3, so ShiftMatrix[13] is the zero vector and ShiftMatrix[i]
// and ShiftMatrix[26-i] are always antiparallel.
type Lattice struct {
	ToCartesian    Matrix
	ToFractional   Matrix
	MetricInverse  Matrix
	Volume         float64
	ShiftMatrix    [27]Vector
	DistanceMatrix [13]float64
}
