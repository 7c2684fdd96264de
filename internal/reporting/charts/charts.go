// Package charts draws per-agent error histograms, as an interactive HTML
// page or as a static PNG/SVG image.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/bidlens/internal/analysis"
)

// Save writes the chart for r to path; the extension picks the output kind.
func Save(path string, r *analysis.Report) error {
	if len(r.Agents) == 0 {
		return fmt.Errorf("chart %s: no bid samples to plot", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating chart %s: %w", path, err)
		}
		defer f.Close() //nolint:errcheck
		if err := WriteHTML(f, r); err != nil {
			return fmt.Errorf("rendering chart %s: %w", path, err)
		}
		return f.Close()
	case ".png", ".svg", ".pdf":
		return SaveImage(path, r)
	default:
		return fmt.Errorf("chart %s: unsupported extension %q (want .html, .png, .svg or .pdf)", path, ext)
	}
}

// series is one agent's histogram as percentages of its samples.
type series struct {
	name   string
	shares []float64
}

func histogramSeries(r *analysis.Report) (labels []string, out []series) {
	for i, a := range r.Agents {
		buckets := a.Histogram.Buckets()
		if i == 0 {
			for _, b := range buckets {
				labels = append(labels, b.Label)
			}
		}
		s := series{name: a.AIType, shares: make([]float64, len(buckets))}
		if a.Overall.N > 0 {
			for j, b := range buckets {
				s.shares[j] = float64(b.Count) / float64(a.Overall.N) * 100
			}
		}
		out = append(out, s)
	}
	return labels, out
}
