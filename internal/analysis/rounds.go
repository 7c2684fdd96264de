package analysis

import (
	"github.com/spboyer/bidlens/internal/metrics"
	"github.com/spboyer/bidlens/internal/models"
)

// TrumpCount is how often a trump was declared across all rounds.
type TrumpCount struct {
	Trump string
	Count int
	Pct   float64
}

// RoundInsights summarizes rounds independently of the agents playing them.
type RoundInsights struct {
	TotalRounds int
	Trumps      []TrumpCount
}

// ComputeRoundInsights counts normalized trumps over every round. The
// trumpTypes are always listed first, even with a zero count, followed by any
// other label in first-seen order.
func ComputeRoundInsights(games []models.GameRecord, trumpTypes []string) RoundInsights {
	var all []string
	for i := range games {
		for j := range games[i].Rounds {
			all = append(all, models.NormalizeTrump(games[i].Rounds[j].Trump))
		}
	}
	counts := Accumulate(all, func(t string) string { return t },
		func(n int, _ string) int { return n + 1 })

	ri := RoundInsights{TotalRounds: len(all)}
	listed := make(map[string]bool, len(trumpTypes))
	for _, t := range trumpTypes {
		listed[t] = true
		n, _ := counts.Get(t)
		ri.Trumps = append(ri.Trumps, TrumpCount{Trump: t, Count: n, Pct: metrics.Percent(n, len(all))})
	}
	for t, n := range counts.All() {
		if listed[t] {
			continue
		}
		ri.Trumps = append(ri.Trumps, TrumpCount{Trump: t, Count: n, Pct: metrics.Percent(n, len(all))})
	}
	return ri
}
