package grid

// reducedStencil lists the six face-neighbor stencil indices, in
// +x, -x, +y, -y, +z, -z order, used for the near-grid gradient and
// the basin-interior (is-known) checks.
var reducedStencil = [6]int{22, 4, 16, 10, 14, 12}

// NewSize validates and packs an (x, y, z) voxel count, failing
// instead of silently wrapping when the product overflows a platform
// int.
func NewSize(x, y, z int) (Size, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return Size{}, ErrInvalidDimensions
	}
	xy, ok := mulOverflows(x, y)
	if !ok {
		return Size{}, ErrGridOverflow
	}
	total, ok := mulOverflows(xy, z)
	if !ok {
		return Size{}, ErrGridOverflow
	}
	return Size{X: x, Y: y, Z: z, Total: total}, nil
}

func mulOverflows(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/a != b {
		return 0, false
	}
	return p, true
}

// Index flattens a 3D voxel coordinate z-fastest: p = ((ix*Ny)+iy)*Nz+iz.
func (s Size) Index(ix, iy, iz int) int {
	return (ix*s.Y+iy)*s.Z + iz
}

// NewShiftTable classifies every voxel of size into one of 27 boundary
// classes (one per combination of {first, interior, last} along each
// axis) with a single pass over the grid, then generates the 27x27
// table of signed linear offsets for those classes from the wrap rules
// implied by each axis's boundary state — rather than hand-enumerating
// a 27x27 literal.
func NewShiftTable(size Size) *ShiftTable {
	t := &ShiftTable{size: size}
	t.offsets = buildOffsets(size)
	t.class = buildClassArray(size)
	return t
}

func axisBoundary(i, n int) boundary {
	switch {
	case i == 0:
		return boundaryFirst
	case i == n-1:
		return boundaryLast
	default:
		return boundaryInterior
	}
}

// classIndex packs three per-axis boundary states into one of 27
// class IDs. The weights (9, 3, 1) and boundary values are chosen so
// that a voxel sitting at the first index on every axis lands in
// class 26 and one sitting at the last index on every axis lands in
// class 13 — matching the conventional stencil center index.
func classIndex(sx, sy, sz boundary) int {
	return int(sx)*9 + int(sy)*3 + int(sz)
}

// buildClassArray visits every voxel exactly once via three nested
// counters (no division or modulo in the inner loop) and records its
// boundary class.
func buildClassArray(size Size) []uint8 {
	class := make([]uint8, size.Total)
	p := 0
	for ix := 0; ix < size.X; ix++ {
		sx := axisBoundary(ix, size.X)
		for iy := 0; iy < size.Y; iy++ {
			sy := axisBoundary(iy, size.Y)
			for iz := 0; iz < size.Z; iz++ {
				sz := axisBoundary(iz, size.Z)
				class[p] = uint8(classIndex(sx, sy, sz))
				p++
			}
		}
	}
	return class
}

// buildOffsets enumerates all 27 (sx, sy, sz) boundary combinations and,
// for each, the signed linear offset of every one of the 27 3x3x3
// stencil neighbors, applying the periodic wrap only on the single
// direction (first axis -> step -1, last axis -> step +1) where it is
// needed.
func buildOffsets(size Size) [27][27]int {
	var offsets [27][27]int
	strideX := size.Y * size.Z
	strideY := size.Z
	strideZ := 1
	states := []boundary{boundaryInterior, boundaryLast, boundaryFirst}

	for _, sx := range states {
		for _, sy := range states {
			for _, sz := range states {
				cls := classIndex(sx, sy, sz)
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						for dz := -1; dz <= 1; dz++ {
							k := 9*(dx+1) + 3*(dy+1) + (dz + 1)
							offsets[cls][k] = axisOffset(dx, sx, size.X, strideX) +
								axisOffset(dy, sy, size.Y, strideY) +
								axisOffset(dz, sz, size.Z, strideZ)
						}
					}
				}
			}
		}
	}
	return offsets
}

// axisOffset is the signed linear offset contributed by stepping d in
// {-1,0,1} along one axis, given that axis's boundary state, length,
// and stride. Only the wrap-triggering step is special-cased: a step
// of -1 from the first index jumps to the last index, and a step of
// +1 from the last index jumps to the first.
func axisOffset(d int, s boundary, n, stride int) int {
	switch s {
	case boundaryFirst:
		if d == -1 {
			return (n - 1) * stride
		}
		return d * stride
	case boundaryLast:
		if d == 1 {
			return -(n - 1) * stride
		}
		return d * stride
	default:
		return d * stride
	}
}

// Class returns the boundary class of voxel p, an index into the 27x27
// offset table.
func (t *ShiftTable) Class(p int) uint8 {
	return t.class[p]
}

// FullShift returns the 26 signed offsets, one per 3x3x3 stencil
// neighbor excluding the center, that reach every neighbor of voxel p
// in fixed stencil order (k = 9*(dx+1)+3*(dy+1)+(dz+1), k != 13,
// ascending).
func (t *ShiftTable) FullShift(p int) [26]int {
	var out [26]int
	row := t.offsets[t.class[p]]
	j := 0
	for k := 0; k < 27; k++ {
		if k == 13 {
			continue
		}
		out[j] = row[k]
		j++
	}
	return out
}

// ReducedShift returns the six face-neighbor offsets of voxel p, in
// +x, -x, +y, -y, +z, -z order.
func (t *ShiftTable) ReducedShift(p int) [6]int {
	var out [6]int
	row := t.offsets[t.class[p]]
	for i, k := range reducedStencil {
		out[i] = row[k]
	}
	return out
}

// GradientShift returns the signed offset of voxel p's neighbor in
// stencil direction g (each component in {-1,0,1}), used to step along
// a steepest-ascent gradient direction.
func (t *ShiftTable) GradientShift(p int, g [3]int) int {
	k := 9*g[0] + 3*g[1] + g[2] + 13
	return t.offsets[t.class[p]][k]
}
