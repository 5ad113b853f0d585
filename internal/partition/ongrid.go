package partition

import (
	"fmt"

	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/lattice"
)

func runOnGrid(d *density.Density, m []int, workers int, progress *uint64) {
	distances := stencilDistances(d.VoxelLattice)
	parallelOverRanges(len(m), workers, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if m[p] == vacuumID {
				continue
			}
			onGridWalk(d, m, distances, p)
			bumpProgress(progress)
		}
	})
}

// stencilDistances gives the cartesian distance to each of the 26
// stencil neighbors (excluding the center), in the same order
// density.FullShift returns offsets in.
func stencilDistances(l lattice.Lattice) [26]float64 {
	var out [26]float64
	j := 0
	for k := 0; k < 27; k++ {
		if k == 13 {
			continue
		}
		out[j] = lattice.Norm(l.ShiftMatrix[k])
		j++
	}
	return out
}

// onGridWalk follows the maximum-ratio neighbor from start until it
// reaches a voxel with no improving neighbor (a maximum) or an
// already-assigned voxel, then assigns every voxel on the followed
// path to that root.
func onGridWalk(d *density.Density, m []int, distances [26]float64, start int) int {
	maxHops := d.Size.Total + 64
	path := make([]int, 0, 8)
	p := start

	for hops := 0; ; hops++ {
		if hops > maxHops {
			panic(fmt.Sprintf("partition: on-grid walk from %d failed to terminate", start))
		}
		if m[p] != unassigned && m[p] != vacuumID {
			root := m[p]
			assignPath(m, path, root)
			return root
		}
		path = append(path, p)

		rho := d.At(p)
		shifts := d.FullShift(p)
		bestRatio := 0.0
		bestOffset := 0
		improved := false
		for j, off := range shifts {
			ratio := (d.At(p+off) - rho) / distances[j]
			if ratio > bestRatio {
				bestRatio = ratio
				bestOffset = off
				improved = true
			}
		}
		if !improved {
			assignPath(m, path, p)
			return p
		}
		p += bestOffset
	}
}

func assignPath(m []int, path []int, root int) {
	for _, q := range path {
		m[q] = root
	}
}
