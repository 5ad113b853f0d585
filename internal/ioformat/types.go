package ioformat

// Atom is one nucleus read from a density file.
type Atom struct {
	// Number is the atomic number (cube) or a 1-based species index
	// into the file's species list (VASP); callers that need the
	// element symbol for VASP input should consult Symbol.
	Number   int
	Symbol   string
	Position [3]float64 // cartesian, same units as Cell
}

// Result is the file-format-agnostic outcome of reading a density file:
// a flattened grid of values, the grid dimensions, the cell vectors
// they span, the atom list, and whether the grid was stored x-fastest
// on disk (true) rather than the engine's native z-fastest layout.
type Result struct {
	Values    []float64
	Nx, Ny, Nz int
	Cell      [3][3]float64
	Atoms     []Atom
	ZYXFormat bool
}

// ToZFastest returns a copy of r.Values reordered from x-fastest
// (index = ix + iy*Nx + iz*Nx*Ny) to the engine's z-fastest convention
// (index = (ix*Ny+iy)*Nz+iz). It is a no-op, returning r.Values
// unchanged, when r.ZYXFormat is already false.
func (r Result) ToZFastest() []float64 {
	if !r.ZYXFormat {
		return r.Values
	}
	out := make([]float64, len(r.Values))
	for ix := 0; ix < r.Nx; ix++ {
		for iy := 0; iy < r.Ny; iy++ {
			for iz := 0; iz < r.Nz; iz++ {
				xFastest := ix + iy*r.Nx + iz*r.Nx*r.Ny
				zFastest := (ix*r.Ny+iy)*r.Nz + iz
				out[zFastest] = r.Values[xFastest]
			}
		}
	}
	return out
}
