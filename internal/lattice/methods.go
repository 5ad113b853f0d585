package lattice

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New builds a Lattice from the cartesian cell vectors (rows a, b, c),
// computing the cartesian<->fractional transforms, the cell volume, and
// the periodic-image shift and distance tables.
func New(cartesian Matrix) (Lattice, error) {
	rows := make([]float64, 0, 9)
	for _, r := range cartesian {
		rows = append(rows, r[0], r[1], r[2])
	}
	m := mat.NewDense(3, 3, rows)

	det := mat.Det(m)
	if math.Abs(det) < 1e-12 {
		return Lattice{}, ErrSingularLattice
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return Lattice{}, ErrSingularLattice
	}

	var toFractional Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			toFractional[i][j] = inv.At(i, j)
		}
	}

	l := Lattice{
		ToCartesian:   cartesian,
		ToFractional:  toFractional,
		MetricInverse: metricInverse(toFractional),
		Volume:        math.Abs(det),
	}
	l.ShiftMatrix = shiftMatrix(cartesian)
	l.DistanceMatrix = distanceMatrix(l.ShiftMatrix)
	return l, nil
}

// metricInverse computes toFractionalᵀ·toFractional, the inverse of
// the cell's Gram matrix, used to raise a fractional-space one-form
// (a finite-difference gradient) to the contravariant direction it
// actually represents in cartesian space.
func metricInverse(toFractional Matrix) Matrix {
	var g Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += toFractional[k][i] * toFractional[k][j]
			}
			g[i][j] = sum
		}
	}
	return g
}

// Voxel scales a cell lattice down to the lattice of a single voxel of
// an (nx, ny, nz) grid — row a divided by nx, row b by ny, row c by nz —
// and rebuilds the derived tables for that smaller cell.
func Voxel(cell Matrix, nx, ny, nz int) (Lattice, error) {
	scaled := Matrix{
		{cell[0][0] / float64(nx), cell[0][1] / float64(nx), cell[0][2] / float64(nx)},
		{cell[1][0] / float64(ny), cell[1][1] / float64(ny), cell[1][2] / float64(ny)},
		{cell[2][0] / float64(nz), cell[2][1] / float64(nz), cell[2][2] / float64(nz)},
	}
	return New(scaled)
}

// DotVM computes the vector-matrix product v*m, treating v as a row
// vector. This is the fractional<->cartesian conversion primitive: for
// a Lattice l, DotVM(frac, l.ToCartesian) is cartesian coordinates and
// DotVM(cart, l.ToFractional) is fractional coordinates.
func DotVM(v Vector, m Matrix) Vector {
	var out Vector
	for i := 0; i < 3; i++ {
		out[i] = v[0]*m[0][i] + v[1]*m[1][i] + v[2]*m[2][i]
	}
	return out
}

// Dot computes the dot product of two 3-vectors.
func Dot(a, b Vector) float64 {
	return floats.Dot(a[:], b[:])
}

// Norm computes the euclidean norm of a 3-vector.
func Norm(a Vector) float64 {
	return floats.Norm(a[:], 2)
}

// shiftMatrix enumerates the cartesian translation for each of the 27
// periodic images (including self at the center) in 3x3x3 stencil
// order: i = 9*(dx+1) + 3*(dy+1) + (dz+1).
func shiftMatrix(cartesian Matrix) [27]Vector {
	var shifts [27]Vector
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				i := 9*(dx+1) + 3*(dy+1) + (dz + 1)
				shifts[i] = DotVM(Vector{float64(dx), float64(dy), float64(dz)}, cartesian)
			}
		}
	}
	return shifts
}

// distanceMatrix takes the norm of the first 13 (of 27) shift vectors —
// one representative per antiparallel pair — giving the distances
// between the cell and each of its unique neighboring periodic images.
func distanceMatrix(shifts [27]Vector) [13]float64 {
	var d [13]float64
	for i := 0; i < 13; i++ {
		d[i] = Norm(shifts[i])
	}
	return d
}

// MaxDistance returns the largest entry of the distance matrix, used as
// an upper bound when seeding a minimum-distance search.
func (l Lattice) MaxDistance() float64 {
	return floats.Max(l.DistanceMatrix[:])
}
