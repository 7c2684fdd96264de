// Package extract flattens validated game records into independent bid and
// game samples.
package extract

import (
	"github.com/spboyer/bidlens/internal/models"
)

// Samples is the output of extraction. The slices are read-only to every
// later stage.
type Samples struct {
	Bids  []models.BidSample
	Games []models.GameSample
}

// Extract maps games to samples. It is deterministic and never fails: missing
// optional round fields become defaults or unknown markers on the samples.
func Extract(games []models.GameRecord) Samples {
	var out Samples
	for i := range games {
		g := &games[i]
		out.Games = append(out.Games, GameSamples(g)...)
		for j := range g.Rounds {
			out.Bids = append(out.Bids, BidSamples(g, &g.Rounds[j])...)
		}
	}
	return out
}

// GameSamples returns one sample per configured seat.
func GameSamples(g *models.GameRecord) []models.GameSample {
	out := make([]models.GameSample, 0, len(g.Config.AITypes))
	for seat, ai := range g.Config.AITypes {
		out = append(out, models.GameSample{
			AIType:     ai,
			GameID:     g.GameID,
			Seat:       seat,
			Won:        seat == g.Result.Winner,
			FinalScore: g.FinalScore(seat),
		})
	}
	return out
}

// BidSamples returns one sample per bid accuracy entry of round r.
func BidSamples(g *models.GameRecord, r *models.RoundRecord) []models.BidSample {
	highest := ResolveHighestBidder(r)
	chooser := ResolveTrumpChooser(r)
	trump := models.NormalizeTrump(r.Trump)

	out := make([]models.BidSample, 0, len(r.BidAccuracy))
	for _, ba := range r.BidAccuracy {
		e := ba.Tricks - ba.Bid
		out = append(out, models.BidSample{
			AIType:        g.AIType(ba.Seat),
			GameID:        g.GameID,
			RoundIndex:    r.Index,
			HandSize:      r.HandSize,
			Seat:          ba.Seat,
			Bid:           ba.Bid,
			ActualTricks:  ba.Tricks,
			Error:         e,
			AbsError:      abs(e),
			Trump:         trump,
			Dealer:        r.Dealer,
			HighestBidder: highest.Is(ba.Seat),
			ChoseTrump:    chooser.Is(ba.Seat),
			Exact:         e == 0,
			RoundScore:    r.ScoreAt(ba.Seat),
		})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
