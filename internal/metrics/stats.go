package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics reported for every error group.
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Describe returns mean, median and population standard deviation of values.
// All three are 0 for empty input.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	m, sd := stat.PopMeanStdDev(values, nil)
	return Summary{Mean: m, Median: Median(values), StdDev: sd}
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Variance computes the population variance of a float64 slice.
// Returns 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(values, nil)
	return v
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Median returns the middle value, averaging the two middle values for an
// even count. The input is not modified. Returns 0 for empty input.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// RMSE is the root mean square of errors. Returns 0 for empty input.
func RMSE(errors []float64) float64 {
	if len(errors) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(errors, errors) / float64(len(errors)))
}

// Percent returns count as a percentage of total, or 0 when total is 0.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
