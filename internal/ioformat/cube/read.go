package cube

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/bader/internal/ioformat"
)

// Read parses r as a Gaussian cube file and returns its density grid,
// cell and atom list. The two free-text comment lines at the top of
// the file are discarded.
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

	for i := 0; i < 2; i++ {
		if _, ok := nextLine(); !ok {
			return ioformat.Result{}, fmt.Errorf("%w: missing comment line %d", ErrTruncated, i+1)
		}
	}

	header, ok := nextLine()
	if !ok {
		return ioformat.Result{}, fmt.Errorf("%w: missing atom/origin line", ErrTruncated)
	}
	fields := strings.Fields(header)
	if len(fields) < 4 {
		return ioformat.Result{}, fmt.Errorf("cube: malformed atom/origin line %d", line)
	}
	natoms, err := strconv.Atoi(fields[0])
	if err != nil {
		return ioformat.Result{}, fmt.Errorf("cube: natoms at line %d: %w", line, err)
	}
	if natoms < 0 {
		// A negative count signals orbital data follows the atom list;
		// we only read the density grid, so just take the magnitude.
		natoms = -natoms
	}

	readAxis := func() (int, [3]float64, error) {
		l, ok := nextLine()
		if !ok {
			return 0, [3]float64{}, ErrTruncated
		}
		f := strings.Fields(l)
		if len(f) < 4 {
			return 0, [3]float64{}, fmt.Errorf("cube: malformed axis line %d", line)
		}
		n, err := strconv.Atoi(f[0])
		if err != nil {
			return 0, [3]float64{}, fmt.Errorf("cube: axis count at line %d: %w", line, err)
		}
		var v [3]float64
		for i := 0; i < 3; i++ {
			x, err := strconv.ParseFloat(f[i+1], 64)
			if err != nil {
				return 0, [3]float64{}, fmt.Errorf("cube: axis vector at line %d: %w", line, err)
			}
			v[i] = x
		}
		if n < 0 {
			n = -n
		}
		return n, v, nil
	}

	nx, vx, err := readAxis()
	if err != nil {
		return ioformat.Result{}, err
	}
	ny, vy, err := readAxis()
	if err != nil {
		return ioformat.Result{}, err
	}
	nz, vz, err := readAxis()
	if err != nil {
		return ioformat.Result{}, err
	}

	atoms := make([]ioformat.Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		l, ok := nextLine()
		if !ok {
			return ioformat.Result{}, fmt.Errorf("%w: atom %d", ErrTruncated, i)
		}
		f := strings.Fields(l)
		if len(f) < 5 {
			return ioformat.Result{}, fmt.Errorf("cube: malformed atom line %d", line)
		}
		number, err := strconv.Atoi(f[0])
		if err != nil {
			return ioformat.Result{}, fmt.Errorf("cube: atom %d number: %w", i, err)
		}
		var pos [3]float64
		for j := 0; j < 3; j++ {
			x, err := strconv.ParseFloat(f[j+2], 64)
			if err != nil {
				return ioformat.Result{}, fmt.Errorf("cube: atom %d position: %w", i, err)
			}
			pos[j] = x
		}
		atoms = append(atoms, ioformat.Atom{Number: number, Position: pos})
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
				return ioformat.Result{}, fmt.Errorf("cube: density value at line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return ioformat.Result{}, fmt.Errorf("cube: %w", err)
	}

	cell := [3][3]float64{
		{vx[0] * float64(nx), vx[1] * float64(nx), vx[2] * float64(nx)},
		{vy[0] * float64(ny), vy[1] * float64(ny), vy[2] * float64(ny)},
		{vz[0] * float64(nz), vz[1] * float64(nz), vz[2] * float64(nz)},
	}

	return ioformat.Result{
		Values:    values,
		Nx:        nx,
		Ny:        ny,
		Nz:        nz,
		Cell:      cell,
		Atoms:     atoms,
		ZYXFormat: false,
	}, nil
}
