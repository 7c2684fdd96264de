package analysis

import "github.com/spboyer/bidlens/internal/models"

// TrumpDisparity flags an agent type whose MAE varies noticeably with trump.
type TrumpDisparity struct {
	AIType   string
	MAERange float64
	ByTrump  *Ordered[string, []models.BidSample]
}

// DetectTrumpDisparity groups samples by normalized trump and reports a
// disparity when more than one trump is present and the spread between the
// highest and lowest per-trump MAE exceeds threshold. This decides whether the
// report shows a trump breakdown; it is not a significance test.
func DetectTrumpDisparity(aiType string, samples []models.BidSample, threshold float64) (TrumpDisparity, bool) {
	byTrump := GroupBy(samples, func(s models.BidSample) string {
		return models.NormalizeTrumpLabel(s.Trump)
	})
	if byTrump.Len() < 2 {
		return TrumpDisparity{}, false
	}

	first := true
	var lo, hi float64
	for _, group := range byTrump.All() {
		mae := MAE(group)
		if first {
			lo, hi = mae, mae
			first = false
			continue
		}
		lo = min(lo, mae)
		hi = max(hi, mae)
	}

	spread := hi - lo
	if spread <= threshold {
		return TrumpDisparity{}, false
	}
	return TrumpDisparity{AIType: aiType, MAERange: spread, ByTrump: byTrump}, true
}
