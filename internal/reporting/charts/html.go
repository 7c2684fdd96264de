package charts

import (
	"io"
	"math"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/spboyer/bidlens/internal/analysis"
)

// WriteHTML renders an echarts page: the error histogram of every agent
// type, then MAE by hand size.
func WriteHTML(w io.Writer, r *analysis.Report) error {
	page := components.NewPage()
	page.AddCharts(histogramBar(r), handSizeBar(r))
	return page.Render(w)
}

func histogramBar(r *analysis.Report) *charts.Bar {
	labels, all := histogramSeries(r)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Bid error distribution", Subtitle: "error = actual tricks - bid, share of samples (%)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
	)
	bar.SetXAxis(labels)
	for _, s := range all {
		data := make([]opts.BarData, len(s.shares))
		for i, v := range s.shares {
			data[i] = opts.BarData{Value: round1(v)}
		}
		bar.AddSeries(s.name, data)
	}
	return bar
}

func handSizeBar(r *analysis.Report) *charts.Bar {
	var sizes []int
	for _, a := range r.Agents {
		for _, hs := range a.ByHandSize {
			if !slices.Contains(sizes, hs.HandSize) {
				sizes = append(sizes, hs.HandSize)
			}
		}
	}
	slices.Sort(sizes)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "MAE by hand size"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "hand size"}),
	)
	bar.SetXAxis(sizes)
	for _, a := range r.Agents {
		data := make([]opts.BarData, len(sizes))
		for i, size := range sizes {
			data[i] = opts.BarData{Value: 0.0}
			for _, hs := range a.ByHandSize {
				if hs.HandSize == size {
					data[i] = opts.BarData{Value: math.Round(hs.Stats.MAE*100) / 100}
				}
			}
		}
		bar.AddSeries(a.AIType, data,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	}
	return bar
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
