package report

import "time"

// AtomResult is one row of the per-atom table: the basin assigned to
// an atom's nucleus, its accumulated charge and volume, and its
// minimum distance to the basin surface.
type AtomResult struct {
	Index          int
	Symbol         string
	Position       [3]float64
	Charge         float64
	Volume         float64
	SurfaceMinDist float64
}

// Summary is everything a rendered report needs: the per-atom results,
// the vacuum totals excluded from them, and run metadata.
type Summary struct {
	RunID        string
	Method       string
	Elapsed      time.Duration
	Atoms        []AtomResult
	VacuumCharge float64
	VacuumVolume float64
}

// TotalCharge returns the sum of every atom's charge plus vacuum.
func (s Summary) TotalCharge() float64 {
	total := s.VacuumCharge
	for _, a := range s.Atoms {
		total += a.Charge
	}
	return total
}

// TotalVolume returns the sum of every atom's volume plus vacuum.
func (s Summary) TotalVolume() float64 {
	total := s.VacuumVolume
	for _, a := range s.Atoms {
		total += a.Volume
	}
	return total
}
