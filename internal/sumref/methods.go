package sumref

import (
	"fmt"
	"io"

	"github.com/banshee-data/bader/internal/ioformat"
)

// Reader reads one density file into a Result, matching the signature
// of cube.Read and vasp.Read.
type Reader func(io.Reader) (ioformat.Result, error)

// Open opens a path for reading, matching ioformat.Open's signature.
// cmd/bader passes ioformat.Open; tests pass an in-memory stub.
type Open func(path string) (io.ReadCloser, error)

// Sum reads each of paths with read (opened via open) and returns a
// Result whose Values is their element-wise sum, already normalized to
// the engine's z-fastest layout regardless of each file's native
// layout. The grid dimensions, cell and atom list of the first file are
// carried through unchanged; every other file's grid must match it
// exactly.
func Sum(open Open, read Reader, paths []string) (ioformat.Result, error) {
	if len(paths) == 0 {
		return ioformat.Result{}, ErrNoReferences
	}
	if len(paths) > 2 {
		return ioformat.Result{}, ErrTooManyReferences
	}

	var combined ioformat.Result
	for i, path := range paths {
		rc, err := open(path)
		if err != nil {
			return ioformat.Result{}, fmt.Errorf("sumref: opening %s: %w", path, err)
		}
		res, err := read(rc)
		closeErr := rc.Close()
		if err != nil {
			return ioformat.Result{}, fmt.Errorf("sumref: reading %s: %w", path, err)
		}
		if closeErr != nil {
			return ioformat.Result{}, fmt.Errorf("sumref: closing %s: %w", path, closeErr)
		}

		values := res.ToZFastest()
		if i == 0 {
			combined = res
			combined.Values = values
			combined.ZYXFormat = false
			continue
		}
		if res.Nx != combined.Nx || res.Ny != combined.Ny || res.Nz != combined.Nz {
			return ioformat.Result{}, fmt.Errorf("%w: %s is %dx%dx%d, expected %dx%dx%d",
				ErrGridMismatch, path, res.Nx, res.Ny, res.Nz, combined.Nx, combined.Ny, combined.Nz)
		}
		for p, v := range values {
			combined.Values[p] += v
		}
	}
	return combined, nil
}
