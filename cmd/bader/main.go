// Command bader partitions a charge-density grid into Bader atomic
// basins and reports the charge and volume assigned to each atom.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/bader/internal/config"
	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/ioformat"
	"github.com/banshee-data/bader/internal/ioformat/cube"
	"github.com/banshee-data/bader/internal/ioformat/vasp"
	"github.com/banshee-data/bader/internal/lattice"
	"github.com/banshee-data/bader/internal/monitoring"
	"github.com/banshee-data/bader/internal/partition"
	"github.com/banshee-data/bader/internal/progress"
	"github.com/banshee-data/bader/internal/report"
	"github.com/banshee-data/bader/internal/resultcache"
	"github.com/banshee-data/bader/internal/sumref"
	"github.com/banshee-data/bader/internal/voxelmap"
)

func main() {
	cfg, err := config.Parse(filepath.Base(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bader: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("bader: %v", err)
	}
}

// readerFor returns the parser matching a config.FileKind.
func readerFor(kind config.FileKind) func(io.Reader) (ioformat.Result, error) {
	if kind == config.KindCube {
		return cube.Read
	}
	return vasp.Read
}

// run executes one partitioning pass and writes its report to out. It
// is split from main so the wiring can be exercised without os.Exit.
func run(cfg *config.Config, out, diag io.Writer) error {
	runID := uuid.NewString()
	monitoring.Logf("bader: run %s: reading %s", runID, cfg.File)

	info, err := os.Stat(cfg.File)
	if err != nil {
		return fmt.Errorf("stat %s: %w", cfg.File, err)
	}

	var cache *resultcache.Cache
	var cacheKey string
	if cacheDir := os.Getenv("BADER_CACHE_DIR"); cacheDir != "" {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return fmt.Errorf("creating cache dir: %w", err)
		}
		cache, err = resultcache.Open(filepath.Join(cacheDir, "results.db"))
		if err != nil {
			return fmt.Errorf("opening result cache: %w", err)
		}
		defer cache.Close()

		cacheKey = resultcache.Key(cfg.File, info.Size(), info.ModTime(), cfg.Method.String(), cfg.VacuumTolerance)
		if payload, err := cache.Get(cacheKey); err == nil {
			monitoring.Logf("bader: run %s: cache hit for %s", runID, cfg.File)
			var summary report.Summary
			if err := json.Unmarshal([]byte(payload), &summary); err != nil {
				return fmt.Errorf("decoding cached result: %w", err)
			}
			return report.WriteTable(out, summary)
		}
	}

	mainResult, err := readDensityFile(cfg.File, cfg.ResolveFileKind())
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.File, err)
	}
	mainValues := mainResult.ToZFastest()

	refValues := mainValues
	if refs := cfg.ResolvedReferences(); len(refs) > 0 {
		refResult, err := sumref.Sum(ioformat.Open, readerFor(cfg.ResolveFileKind()), refs)
		if err != nil {
			return fmt.Errorf("summing reference files: %w", err)
		}
		if refResult.Nx != mainResult.Nx || refResult.Ny != mainResult.Ny || refResult.Nz != mainResult.Nz {
			return fmt.Errorf("reference grid %dx%dx%d does not match %s's %dx%dx%d",
				refResult.Nx, refResult.Ny, refResult.Nz, cfg.File, mainResult.Nx, mainResult.Ny, mainResult.Nz)
		}
		refValues = refResult.Values
	}

	d, err := density.New(refValues, mainResult.Nx, mainResult.Ny, mainResult.Nz, mainResult.Cell, cfg.VacuumTolerance, lattice.Vector{0, 0, 0})
	if err != nil {
		return fmt.Errorf("building density grid: %w", err)
	}

	bar := progress.New(uint64(d.Size.Total), 0, diag)
	bar.Start()
	start := time.Now()
	vm, err := partition.Run(d, cfg.Method, cfg.Threads, bar.Counter)
	elapsed := time.Since(start)
	bar.Stop()
	if err != nil {
		return fmt.Errorf("partitioning: %w", err)
	}
	monitoring.Logf("bader: run %s: %d basins in %s", runID, vm.BasinCount(), elapsed)

	summary, err := summarize(runID, cfg.Method.String(), elapsed, vm, d, mainValues, mainResult.Atoms)
	if err != nil {
		return fmt.Errorf("summarizing basins: %w", err)
	}

	if cache != nil {
		payload, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("encoding result for cache: %w", err)
		}
		if err := cache.Put(cacheKey, string(payload)); err != nil {
			return fmt.Errorf("storing result in cache: %w", err)
		}
	}

	if err := report.WriteTable(out, summary); err != nil {
		return err
	}

	if histDir := os.Getenv("BADER_HISTOGRAM_DIR"); histDir != "" {
		if err := os.MkdirAll(histDir, 0o755); err != nil {
			return fmt.Errorf("creating histogram dir: %w", err)
		}
		chargePath := filepath.Join(histDir, "charge.png")
		volumePath := filepath.Join(histDir, "volume.png")
		if err := report.SaveHistograms(summary, chargePath, volumePath); err != nil {
			return fmt.Errorf("saving histograms: %w", err)
		}
	}

	return nil
}

func readDensityFile(path string, kind config.FileKind) (ioformat.Result, error) {
	rc, err := ioformat.Open(path)
	if err != nil {
		return ioformat.Result{}, err
	}
	defer rc.Close()
	return readerFor(kind)(rc)
}

// summarize assigns each basin to its nearest atom (over every periodic
// image), accumulates per-atom charge and volume, and computes each
// atom's basin surface distance.
func summarize(runID, method string, elapsed time.Duration, vm *voxelmap.VoxelMap, d *density.Density, charge []float64, atoms []ioformat.Atom) (report.Summary, error) {
	if len(atoms) == 0 {
		return report.Summary{}, fmt.Errorf("no atoms present in input file")
	}

	atomPositions := make([]lattice.Vector, len(atoms))
	for i, a := range atoms {
		atomPositions[i] = lattice.Vector(a.Position)
	}

	assignedAtom := assignBasinsToAtoms(vm, d, atomPositions, d.CellLattice)

	basinCharge, basinVolume, vacuumCharge, vacuumVolume := vm.ChargeSum([][]float64{charge})
	surfaceDist := vm.SurfaceDistance(assignedAtom, atomPositions, d.CellLattice, d)

	atomCharge := make([]float64, len(atoms))
	atomVolume := make([]float64, len(atoms))
	for basin, atomIdx := range assignedAtom {
		atomCharge[atomIdx] += basinCharge[0][basin]
		atomVolume[atomIdx] += float64(basinVolume[basin])
	}

	results := make([]report.AtomResult, len(atoms))
	for i, a := range atoms {
		results[i] = report.AtomResult{
			Index:          i,
			Symbol:         a.Symbol,
			Position:       a.Position,
			Charge:         atomCharge[i],
			Volume:         atomVolume[i],
			SurfaceMinDist: surfaceDist[i],
		}
	}

	return report.Summary{
		RunID:        runID,
		Method:       method,
		Elapsed:      elapsed,
		Atoms:        results,
		VacuumCharge: vacuumCharge,
		VacuumVolume: float64(vacuumVolume),
	}, nil
}

// assignBasinsToAtoms maps each basin (in vm.Maxima order, skipping the
// vacuum sentinel) to the index of its nearest atom, searching every
// periodic image of the cell the way voxelmap.SurfaceDistance does.
func assignBasinsToAtoms(vm *voxelmap.VoxelMap, d *density.Density, atomPositions []lattice.Vector, cellLattice lattice.Lattice) []int {
	assigned := make([]int, vm.BasinCount())
	for _, maxima := range vm.Maxima {
		if maxima < 0 {
			continue
		}
		basin, ok := vm.BasinIndex(maxima)
		if !ok {
			continue
		}
		basinCartesian := d.Cartesian(maxima)

		best := 0
		bestDistSq := -1.0
		for atomIdx, atom := range atomPositions {
			for _, shift := range cellLattice.ShiftMatrix {
				dx := basinCartesian[0] - (atom[0] + shift[0])
				dy := basinCartesian[1] - (atom[1] + shift[1])
				dz := basinCartesian[2] - (atom[2] + shift[2])
				distSq := dx*dx + dy*dy + dz*dz
				if bestDistSq < 0 || distSq < bestDistSq {
					bestDistSq = distSq
					best = atomIdx
				}
			}
		}
		assigned[basin] = best
	}
	return assigned
}

// exitUsage is used by tests to assert the error text a bad invocation
// would print, without calling os.Exit.
func exitUsage(args []string) string {
	if _, err := config.Parse("bader", args); err != nil {
		return strings.TrimSpace(err.Error())
	}
	return ""
}
