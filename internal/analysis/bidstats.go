package analysis

import (
	"github.com/spboyer/bidlens/internal/metrics"
	"github.com/spboyer/bidlens/internal/models"
)

// BidStats summarizes the bid accuracy of a group of samples.
type BidStats struct {
	N          int
	Errors     []float64
	AbsErrors  []float64
	ExactCount int
	OverCount  int
	UnderCount int
	ExactPct   float64
	OverPct    float64
	UnderPct   float64
	MeanBid    float64
	MeanActual float64
	MeanError  float64
	MAE        float64
	RMSE       float64
	// Error holds mean, median and population standard deviation of Errors.
	Error metrics.Summary
}

// ComputeBidStats reduces a group of bid samples. Exact, over and under are
// classified from the sign of the error so the three percentages of a non-empty
// group always sum to 100. An empty group yields all zeros.
func ComputeBidStats(samples []models.BidSample) BidStats {
	n := len(samples)
	st := BidStats{
		N:         n,
		Errors:    make([]float64, 0, n),
		AbsErrors: make([]float64, 0, n),
	}
	bids := make([]float64, 0, n)
	actuals := make([]float64, 0, n)

	for _, s := range samples {
		st.Errors = append(st.Errors, float64(s.Error))
		st.AbsErrors = append(st.AbsErrors, float64(s.AbsError))
		bids = append(bids, float64(s.Bid))
		actuals = append(actuals, float64(s.ActualTricks))
		switch {
		case s.Error < 0:
			st.OverCount++
		case s.Error > 0:
			st.UnderCount++
		default:
			st.ExactCount++
		}
	}

	st.ExactPct = metrics.Percent(st.ExactCount, n)
	st.OverPct = metrics.Percent(st.OverCount, n)
	st.UnderPct = metrics.Percent(st.UnderCount, n)
	st.MeanBid = metrics.Mean(bids)
	st.MeanActual = metrics.Mean(actuals)
	st.Error = metrics.Describe(st.Errors)
	st.MeanError = st.Error.Mean
	st.MAE = metrics.Mean(st.AbsErrors)
	st.RMSE = metrics.RMSE(st.Errors)
	return st
}

// MAE is the mean absolute error of samples, 0 when empty.
func MAE(samples []models.BidSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0
	for _, s := range samples {
		total += s.AbsError
	}
	return float64(total) / float64(len(samples))
}
