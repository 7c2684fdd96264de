package metrics

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval is a percentile bootstrap confidence interval for a mean.
type Interval struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Mean      float64 `json:"mean"`
	Level     float64 `json:"level"`
	Resamples int     `json:"resamples"`
}

// Valid reports whether the interval was actually resampled.
func (iv Interval) Valid() bool { return iv.Resamples > 0 }

// BootstrapMean resamples values with replacement iterations times and
// returns the percentile interval of the resampled means at level (e.g. 0.95).
// The same seed always yields the same interval. Fewer than two values, or
// a non-positive iteration count, give a degenerate interval at the mean.
func BootstrapMean(values []float64, level float64, iterations int, seed uint64) Interval {
	m := Mean(values)
	n := len(values)
	if n < 2 || iterations <= 0 {
		return Interval{Lower: m, Upper: m, Mean: m, Level: level}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	means := make([]float64, iterations)
	sample := make([]float64, n)
	for i := range means {
		for j := range sample {
			sample[j] = values[rng.IntN(n)]
		}
		means[i] = stat.Mean(sample, nil)
	}
	sort.Float64s(means)

	alpha := 1 - level
	lo := int(math.Floor(alpha / 2 * float64(iterations)))
	hi := int(math.Floor((1 - alpha/2) * float64(iterations)))
	if hi >= iterations {
		hi = iterations - 1
	}
	return Interval{
		Lower:     means[lo],
		Upper:     means[hi],
		Mean:      m,
		Level:     level,
		Resamples: iterations,
	}
}
