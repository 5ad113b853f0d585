package partition

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/lattice"
)

func runNearGrid(d *density.Density, m []int, workers int, progress *uint64) {
	parallelOverRanges(len(m), workers, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			if m[p] == vacuumID {
				continue
			}
			nearGridWalk(d, m, p)
			bumpProgress(progress)
		}
	})

	refineNearGrid(d, m, workers)
}

// refineNearGrid re-walks every non-interior voxel (one whose basin
// differs from some face-neighbor's) from scratch, repeating full
// sweeps until one makes no changes — the near-grid edge-refinement
// pass.
func refineNearGrid(d *density.Density, m []int, workers int) {
	for {
		var changed int64
		parallelOverRanges(len(m), workers, func(lo, hi int) {
			for p := lo; p < hi; p++ {
				if m[p] == vacuumID {
					continue
				}
				if isKnown(m, p, d.ReducedShift(p)) {
					continue
				}
				before := m[p]
				m[p] = unassigned
				root := nearGridWalk(d, m, p)
				if root != before {
					atomic.AddInt64(&changed, 1)
				}
			}
		})
		if changed == 0 {
			return
		}
	}
}

// nearGridWalk follows the rounded true-gradient direction from p,
// carrying a rounding-residual correction vector, until it reaches a
// maximum or an already-assigned voxel.
func nearGridWalk(d *density.Density, m []int, start int) int {
	maxHops := d.Size.Total + 64
	path := make([]int, 0, 8)
	var delta [3]float64
	p := start

	for hops := 0; ; hops++ {
		if hops > maxHops {
			panic(fmt.Sprintf("partition: near-grid walk from %d failed to terminate", start))
		}
		if m[p] != unassigned && m[p] != vacuumID {
			root := m[p]
			assignPath(m, path, root)
			return root
		}
		path = append(path, p)

		step, offset := nearGridStep(d, p, &delta)
		if step == ([3]int{0, 0, 0}) {
			assignPath(m, path, p)
			return p
		}
		if offset == 0 && !anyNeighborHigher(d, p) {
			assignPath(m, path, p)
			return p
		}
		p += offset
	}
}

// nearGridStep computes the rounded gradient step at p, carrying the
// rounding residual in delta across calls along a single walk so that
// small per-hop biases don't accumulate into a systematic drift.
func nearGridStep(d *density.Density, p int, delta *[3]float64) ([3]int, int) {
	reduced := d.ReducedShift(p) // +x, -x, +y, -y, +z, -z
	gFrac := lattice.Vector{
		(d.At(p+reduced[0]) - d.At(p+reduced[1])) / 2,
		(d.At(p+reduced[2]) - d.At(p+reduced[3])) / 2,
		(d.At(p+reduced[4]) - d.At(p+reduced[5])) / 2,
	}

	// gFrac is a covariant gradient (a one-form: partial derivatives
	// with respect to fractional coordinates). Recovering the
	// contravariant direction that actually points toward steepest
	// ascent in cartesian space requires raising its index through the
	// lattice's inverse metric tensor, not a round trip through
	// ToCartesian and back through ToFractional — that composition is
	// the identity for any invertible matrix and silently discards the
	// cell's non-orthogonality.
	trueDirection := lattice.DotVM(gFrac, d.VoxelLattice.MetricInverse)

	var s [3]int
	for axis := 0; axis < 3; axis++ {
		step := roundStep(trueDirection[axis])
		residual := trueDirection[axis] - float64(step)
		delta[axis] += residual
		switch {
		case delta[axis] > 0.5:
			step = clampStep(step + 1)
			delta[axis] -= 1
		case delta[axis] < -0.5:
			step = clampStep(step - 1)
			delta[axis] += 1
		}
		s[axis] = step
	}

	if s == ([3]int{0, 0, 0}) {
		return s, 0
	}
	return s, d.GradientShift(p, s)
}

func anyNeighborHigher(d *density.Density, p int) bool {
	rho := d.At(p)
	for _, off := range d.FullShift(p) {
		if d.At(p+off) > rho {
			return true
		}
	}
	return false
}

func roundStep(v float64) int {
	return clampStep(int(math.Round(v)))
}

func clampStep(v int) int {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
