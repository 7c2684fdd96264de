package analysis

import (
	"fmt"
	"math"
)

// Histogram counts integer-rounded values into one bucket per integer in
// [Min, Max]. The first bucket collects everything at or below Min and the
// last everything at or above Max, so the width never depends on outliers.
type Histogram struct {
	Min    int
	Max    int
	Counts []int
}

// NewHistogram buckets values. Values are rounded half to even before
// bucketing. min must be below max; see Config.Validate.
func NewHistogram(values []float64, min, max int) Histogram {
	h := Histogram{Min: min, Max: max, Counts: make([]int, max-min+1)}
	for _, v := range values {
		h.Counts[h.index(v)]++
	}
	return h
}

func (h Histogram) index(v float64) int {
	r := math.RoundToEven(v)
	switch {
	case r <= float64(h.Min):
		return 0
	case r >= float64(h.Max):
		return len(h.Counts) - 1
	default:
		return int(r) - h.Min
	}
}

// Total is the number of values counted.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Bucket is a labelled histogram entry.
type Bucket struct {
	Label string
	Value int
	Count int
}

// Buckets returns the buckets from lowest to highest with display labels:
// "<=-6", "-5", ..., "+0", ..., "+5", ">=+6".
func (h Histogram) Buckets() []Bucket {
	out := make([]Bucket, len(h.Counts))
	for i, c := range h.Counts {
		v := h.Min + i
		out[i] = Bucket{Label: bucketLabel(v, h.Min, h.Max), Value: v, Count: c}
	}
	return out
}

func bucketLabel(v, min, max int) string {
	switch {
	case v == min:
		return "<=" + signed(min)
	case v == max:
		return ">=" + signed(max)
	default:
		return signed(v)
	}
}

// signed formats non-negative numbers with an explicit plus sign.
func signed(v int) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
