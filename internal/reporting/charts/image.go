package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/spboyer/bidlens/internal/analysis"
)

// SaveImage draws grouped histogram bars, one colour per agent type. The
// format follows the file extension.
func SaveImage(path string, r *analysis.Report) error {
	labels, all := histogramSeries(r)

	p := plot.New()
	p.Title.Text = "Bid error distribution"
	p.X.Label.Text = "error (actual tricks - bid)"
	p.Y.Label.Text = "share of samples (%)"

	barWidth := vg.Points(36) / vg.Length(len(all))
	for i, s := range all {
		bars, err := plotter.NewBarChart(plotter.Values(s.shares), barWidth)
		if err != nil {
			return fmt.Errorf("building bars for %s: %w", s.name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * vg.Length(2*i-len(all)+1) / 2
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.NominalX(labels...)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart %s: %w", path, err)
	}
	return nil
}
