package vasp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/bader/internal/ioformat"
)

// Read parses r as a VASP CHGCAR/AECCAR file: the POSCAR-style header,
// then the NGX NGY NGZ grid dimensions and the density values stored
// x-fastest. Augmentation-occupancy blocks and any second (e.g.
// magnetization) grid that may follow are ignored.
//
// Values are divided through by the cell volume: CHGCAR stores
// rho(r)*V_cell at each point so that summing and dividing by the point
// count gives the total electron count, and the engine works in charge
// density rather than that integrated quantity.
func Read(r io.Reader) (ioformat.Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	line := 0
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	if _, ok := nextLine(); !ok { // comment/system name
		return ioformat.Result{}, fmt.Errorf("%w: missing comment line", ErrTruncated)
	}

	scaleLine, ok := nextLine()
	if !ok {
		return ioformat.Result{}, fmt.Errorf("%w: missing scale line", ErrTruncated)
	}
	scale, err := strconv.ParseFloat(strings.Fields(scaleLine)[0], 64)
	if err != nil {
		return ioformat.Result{}, fmt.Errorf("vasp: scale factor at line %d: %w", line, err)
	}
	if scale < 0 {
		return ioformat.Result{}, ErrNegativeScale
	}

	var cell [3][3]float64
	for i := 0; i < 3; i++ {
		l, ok := nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: lattice vector %d", ErrTruncated, i)
		}
		f := strings.Fields(l)
		if len(f) < 3 {
			return ioformat.Result{}, fmt.Errorf("vasp: malformed lattice vector at line %d", line)
		}
		for j := 0; j < 3; j++ {
			x, err := strconv.ParseFloat(f[j], 64)
			if err != nil {
				return ioformat.Result{}, fmt.Errorf("vasp: lattice vector at line %d: %w", line, err)
			}
			cell[i][j] = x * scale
		}
	}

	l, ok := nextLine()
	if !ok {
		return ioformat.Result{}, fmt.Errorf("%w: missing species/counts line", ErrTruncated)
	}
	fields := strings.Fields(l)
	var species []string
	if len(fields) == 0 {
		return ioformat.Result{}, fmt.Errorf("vasp: empty species/counts line %d", line)
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		// VASP5+ species-symbols line; the next line holds the counts.
		species = fields
		l, ok = nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: missing species counts line", ErrTruncated)
		}
		fields = strings.Fields(l)
	}

	counts := make([]int, len(fields))
	natoms := 0
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return ioformat.Result{}, fmt.Errorf("vasp: species count at line %d: %w", line, err)
		}
		counts[i] = n
		natoms += n
	}

	l, ok = nextLine()
	if !ok {
		return ioformat.Result{}, fmt.Errorf("%w: missing coordinate-mode line", ErrTruncated)
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(l)), "s") {
		// "Selective dynamics" line; the real mode line follows.
		l, ok = nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: missing coordinate-mode line", ErrTruncated)
		}
	}
	direct := strings.HasPrefix(strings.ToLower(strings.TrimSpace(l)), "d")

	atoms := make([]ioformat.Atom, 0, natoms)
	speciesIndex := 0
	countInSpecies := 0
	for i := 0; i < natoms; i++ {
		for countInSpecies >= counts[speciesIndex] {
			speciesIndex++
			countInSpecies = 0
		}
		l, ok := nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: atom %d", ErrTruncated, i)
		}
		f := strings.Fields(l)
		if len(f) < 3 {
			return ioformat.Result{}, fmt.Errorf("vasp: malformed atom line %d", line)
		}
		var pos [3]float64
		for j := 0; j < 3; j++ {
			x, err := strconv.ParseFloat(f[j], 64)
			if err != nil {
				return ioformat.Result{}, fmt.Errorf("vasp: atom %d position: %w", i, err)
			}
			pos[j] = x
		}
		if direct {
			pos = dotVM(pos, cell)
		} else {
			for j := range pos {
				pos[j] *= scale
			}
		}
		symbol := ""
		if speciesIndex < len(species) {
			symbol = species[speciesIndex]
		}
		atoms = append(atoms, ioformat.Atom{Number: speciesIndex + 1, Symbol: symbol, Position: pos})
		countInSpecies++
	}

	for {
		l, ok := nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: missing grid dimension line", ErrTruncated)
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		fields = strings.Fields(l)
		break
	}
	if len(fields) < 3 {
		return ioformat.Result{}, fmt.Errorf("vasp: malformed grid dimension line %d", line)
	}
	nx, err := strconv.Atoi(fields[0])
	if err != nil {
		return ioformat.Result{}, fmt.Errorf("vasp: grid dimension at line %d: %w", line, err)
	}
	ny, err := strconv.Atoi(fields[1])
	if err != nil {
		return ioformat.Result{}, fmt.Errorf("vasp: grid dimension at line %d: %w", line, err)
	}
	nz, err := strconv.Atoi(fields[2])
	if err != nil {
		return ioformat.Result{}, fmt.Errorf("vasp: grid dimension at line %d: %w", line, err)
	}

	total := nx * ny * nz
	values := make([]float64, 0, total)
	for len(values) < total {
		l, ok := nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: density grid (%d/%d values)", ErrTruncated, len(values), total)
		}
		for _, tok := range strings.Fields(l) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return ioformat.Result{}, fmt.Errorf("vasp: density value at line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return ioformat.Result{}, fmt.Errorf("vasp: %w", err)
	}

	volume := det3(cell)
	if volume != 0 {
		for i, v := range values {
			values[i] = v / volume
		}
	}

	return ioformat.Result{
		Values:    values,
		Nx:        nx,
		Ny:        ny,
		Nz:        nz,
		Cell:      cell,
		Atoms:     atoms,
		ZYXFormat: true,
	}, nil
}

// dotVM treats v as a fractional-coordinate row vector and returns its
// cartesian equivalent under cell's row-vector convention.
func dotVM(v [3]float64, cell [3][3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = v[0]*cell[0][i] + v[1]*cell[1][i] + v[2]*cell[2][i]
	}
	return out
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
