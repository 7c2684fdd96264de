package analysis

import (
	"github.com/spboyer/bidlens/internal/metrics"
	"github.com/spboyer/bidlens/internal/models"
)

// ScoreMetrics is the objective performance of one agent type.
type ScoreMetrics struct {
	AIType           string
	Games            int
	Wins             int
	WinRate          float64
	AvgScore         float64
	StdDevScore      float64
	AvgPointsPerHand float64
	BonusHitRate     float64
}

// ComputeScoreMetrics combines the game samples and bid samples of aiType.
// Points per hand are tricks taken plus bonus when the bid was exact.
func ComputeScoreMetrics(aiType string, games []models.GameSample, bids []models.BidSample, bonus int) ScoreMetrics {
	sm := ScoreMetrics{AIType: aiType}

	var scores []float64
	for _, g := range games {
		if g.AIType != aiType {
			continue
		}
		sm.Games++
		if g.Won {
			sm.Wins++
		}
		scores = append(scores, float64(g.FinalScore))
	}
	sm.WinRate = metrics.Percent(sm.Wins, sm.Games)
	sm.AvgScore = metrics.Mean(scores)
	sm.StdDevScore = metrics.StdDev(scores)

	var points []float64
	exact := 0
	for _, s := range bids {
		if s.AIType != aiType {
			continue
		}
		p := s.ActualTricks
		if s.Exact {
			p += bonus
			exact++
		}
		points = append(points, float64(p))
	}
	sm.AvgPointsPerHand = metrics.Mean(points)
	sm.BonusHitRate = metrics.Percent(exact, len(points))
	return sm
}

// ContractConversion breaks the average points per hand into trick points
// and bonus points.
type ContractConversion struct {
	AIType         string
	AvgBid         float64
	AvgActual      float64
	AvgBonusPoints float64
	AvgTrickPoints float64
}

// TotalPoints is the average points per hand.
func (c ContractConversion) TotalPoints() float64 {
	return c.AvgBonusPoints + c.AvgTrickPoints
}

// ComputeContractConversion summarizes samples, which should all belong to aiType.
func ComputeContractConversion(aiType string, samples []models.BidSample, bonus int) ContractConversion {
	st := ComputeBidStats(samples)
	exactRate := 0.0
	if st.N > 0 {
		exactRate = float64(st.ExactCount) / float64(st.N)
	}
	return ContractConversion{
		AIType:         aiType,
		AvgBid:         st.MeanBid,
		AvgActual:      st.MeanActual,
		AvgBonusPoints: float64(bonus) * exactRate,
		AvgTrickPoints: st.MeanActual,
	}
}
