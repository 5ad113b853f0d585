package partition

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/voxelmap"
)

// Run partitions d's voxels into Bader basins using method, using
// workers goroutines (0 or negative meaning all available cores). If
// progress is non-nil, it is incremented once per voxel that completes
// its assignment-pass walk, with relaxed atomic adds — suitable for a
// ticker-driven observer to poll independently.
func Run(d *density.Density, method Method, workers int, progress *uint64) (*voxelmap.VoxelMap, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := d.Size.Total
	m := make([]int, n)
	for p := 0; p < n; p++ {
		if d.IsVacuum(p) {
			m[p] = vacuumID
		} else {
			m[p] = unassigned
		}
	}

	switch method {
	case OnGrid:
		runOnGrid(d, m, workers, progress)
	case NearGrid:
		runNearGrid(d, m, workers, progress)
	default:
		return nil, ErrUnknownMethod
	}

	return voxelmap.New(m, collectMaxima(m)), nil
}

// collectMaxima scans the finalized map for the distinct maxima (a
// voxel p is its own maximum iff m[p] == p) and returns them sorted,
// with the vacuum sentinel prepended when any voxel was excluded.
func collectMaxima(m []int) []int {
	seen := make(map[int]bool)
	hasVacuum := false
	for _, v := range m {
		if v == vacuumID {
			hasVacuum = true
			continue
		}
		seen[v] = true
	}
	maxima := make([]int, 0, len(seen))
	for v := range seen {
		maxima = append(maxima, v)
	}
	sort.Ints(maxima)
	if hasVacuum {
		return append([]int{vacuumID}, maxima...)
	}
	return maxima
}

// splitRanges divides [0, n) into up to workers disjoint, roughly
// equal, contiguous half-open ranges.
func splitRanges(n, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return [][2]int{{0, n}}
	}

	chunk := n / workers
	rem := n % workers
	ranges := make([][2]int, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := chunk
		if i < rem {
			size++
		}
		ranges = append(ranges, [2]int{start, start + size})
		start += size
	}
	return ranges
}

// parallelOverRanges runs fn(lo, hi) across workers goroutines, each
// owning a disjoint slice of [0, n), and waits for all to finish —
// the join barrier between the assignment and refinement passes.
func parallelOverRanges(n, workers int, fn func(lo, hi int)) {
	var wg sync.WaitGroup
	for _, r := range splitRanges(n, workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(r[0], r[1])
	}
	wg.Wait()
}

func bumpProgress(progress *uint64) {
	if progress != nil {
		atomic.AddUint64(progress, 1)
	}
}

func isKnown(m []int, p int, shifts [6]int) bool {
	for _, s := range shifts {
		if m[p] != m[p+s] {
			return false
		}
	}
	return true
}
