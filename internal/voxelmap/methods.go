package voxelmap

import (
	"math"

	"github.com/banshee-data/bader/internal/density"
	"github.com/banshee-data/bader/internal/lattice"
)

// New builds a VoxelMap, compacting maxima into a dense 0..n-1 basin
// index. If maxima[0] is negative (the vacuum sentinel), it is
// excluded from the index and the real maxima start at maxima[1].
func New(m, maxima []int) *VoxelMap {
	index := make(map[int]int, len(maxima))
	start := 0
	if len(maxima) > 0 && maxima[0] < 0 {
		start = 1
	}
	for i := start; i < len(maxima); i++ {
		index[maxima[i]] = i - start
	}
	return &VoxelMap{Map: m, Maxima: maxima, index: index}
}

// BasinCount returns the number of distinct (non-vacuum) basins.
func (v *VoxelMap) BasinCount() int {
	return len(v.index)
}

// BasinIndex returns the compact basin index for a maxima value, and
// whether that maxima value is a real (non-vacuum) basin.
func (v *VoxelMap) BasinIndex(maxima int) (int, bool) {
	i, ok := v.index[maxima]
	return i, ok
}

// IsKnown reports whether voxel p and all six of its face neighbors
// (given as already-resolved linear offsets) belong to the same basin.
// A refinement pass only needs to revisit voxels where this is false.
func (v *VoxelMap) IsKnown(p int, shifts [6]int) bool {
	for _, s := range shifts {
		if v.Map[p] != v.Map[p+s] {
			return false
		}
	}
	return true
}

// ChargeSum accumulates one or more density arrays over each basin in
// a single pass: basinCharge[j][i] is the sum of densities[j] over
// every voxel assigned to basin i, basinVolume[i] is that basin's
// voxel count, and vacuumCharge/vacuumVolume total the voxels excluded
// as vacuum (vacuum charge is always drawn from densities[0]).
func (v *VoxelMap) ChargeSum(densities [][]float64) (basinCharge [][]float64, basinVolume []int, vacuumCharge float64, vacuumVolume int) {
	n := len(v.index)
	basinVolume = make([]int, n)
	basinCharge = make([][]float64, len(densities))
	for j := range basinCharge {
		basinCharge[j] = make([]float64, n)
	}

	for i, maxima := range v.Map {
		if maxima < 0 {
			vacuumCharge += densities[0][i]
			vacuumVolume++
			continue
		}
		bi := v.index[maxima]
		basinVolume[bi]++
		for j := range densities {
			basinCharge[j][bi] += densities[j][i]
		}
	}
	return basinCharge, basinVolume, vacuumCharge, vacuumVolume
}

// SurfaceDistance computes, for each atom, the minimum cartesian
// distance from any non-interior (not IsKnown) voxel of its assigned
// basin to the atom, searching over all 27 periodic images of the
// atom. Distances are tracked in squared form and only square-rooted
// when a closer voxel is found, seeded from the lattice's largest
// pairwise image distance squared as an upper bound.
func (v *VoxelMap) SurfaceDistance(assignedAtom []int, atomPositions []lattice.Vector, atomLattice lattice.Lattice, d *density.Density) []float64 {
	surfaceDistance := make([]float64, len(atomPositions))
	minDistanceSq := make([]float64, len(atomPositions))
	bound := atomLattice.MaxDistance()
	bound *= bound
	for i := range minDistanceSq {
		minDistanceSq[i] = bound
	}

	for p, maxima := range v.Map {
		if maxima < 0 {
			continue
		}
		if v.IsKnown(p, d.ReducedShift(p)) {
			continue
		}

		basin, ok := v.index[maxima]
		if !ok {
			continue
		}
		atomNum := assignedAtom[basin]
		atom := atomPositions[atomNum]
		pCartesian := d.Cartesian(p)

		for _, shift := range atomLattice.ShiftMatrix {
			dx := pCartesian[0] - (atom[0] + shift[0])
			dy := pCartesian[1] - (atom[1] + shift[1])
			dz := pCartesian[2] - (atom[2] + shift[2])
			distSq := dx*dx + dy*dy + dz*dz
			if distSq < minDistanceSq[atomNum] {
				minDistanceSq[atomNum] = distSq
				surfaceDistance[atomNum] = math.Sqrt(distSq)
			}
		}
	}
	return surfaceDistance
}
