package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistograms writes two bar charts — basin charge to chargePath and
// basin volume to volumePath, one bar per atom in s.Atoms' order — the same
// plot.New/plotter/vg wiring as the teacher's grid-cell time series
// plots.
func SaveHistograms(s Summary, chargePath, volumePath string) error {
	if err := saveBarChart("Basin charge", "Charge (e)", chargeValues(s.Atoms), chargePath); err != nil {
		return fmt.Errorf("report: charge histogram: %w", err)
	}
	if err := saveBarChart("Basin volume", "Volume", volumeValues(s.Atoms), volumePath); err != nil {
		return fmt.Errorf("report: volume histogram: %w", err)
	}
	return nil
}

func saveBarChart(title, yLabel string, values plotter.Values, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Atom"
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return err
	}
	p.Add(bars)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func chargeValues(atoms []AtomResult) plotter.Values {
	v := make(plotter.Values, len(atoms))
	for i, a := range atoms {
		v[i] = a.Charge
	}
	return v
}

func volumeValues(atoms []AtomResult) plotter.Values {
	v := make(plotter.Values, len(atoms))
	for i, a := range atoms {
		v[i] = a.Volume
	}
	return v
}
