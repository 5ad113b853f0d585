package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/stat"
)

// WriteTable renders s as an aligned text table: one row per atom, then
// a vacuum row and a totals row, followed by charge/volume summary
// statistics across basins.
func WriteTable(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run %s\tmethod %s\telapsed %s\n", s.RunID, s.Method, formatElapsed(s.Elapsed))
	fmt.Fprintln(tw, "#\tatom\tx\ty\tz\tcharge\tvolume\tsurf. dist.")
	for _, a := range s.Atoms {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.6f\t%.6f\t%.4f\n",
			a.Index, a.Symbol, a.Position[0], a.Position[1], a.Position[2],
			a.Charge, a.Volume, a.SurfaceMinDist)
	}
	fmt.Fprintf(tw, "vacuum\t\t\t\t\t%.6f\t%.6f\t\n", s.VacuumCharge, s.VacuumVolume)
	fmt.Fprintf(tw, "total\t\t\t\t\t%.6f\t%.6f\t\n", s.TotalCharge(), s.TotalVolume())

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: flushing table: %w", err)
	}

	charges, volumes := basinStats(s.Atoms)
	fmt.Fprintf(w, "\n%s basins  charge mean %.6f stddev %.6f  volume mean %.6f stddev %.6f\n",
		humanize.Comma(int64(len(s.Atoms))),
		stat.Mean(charges, nil), stat.StdDev(charges, nil),
		stat.Mean(volumes, nil), stat.StdDev(volumes, nil))

	return nil
}

func basinStats(atoms []AtomResult) (charges, volumes []float64) {
	charges = make([]float64, len(atoms))
	volumes = make([]float64, len(atoms))
	for i, a := range atoms {
		charges[i] = a.Charge
		volumes[i] = a.Volume
	}
	return charges, volumes
}

func formatElapsed(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
