package analysis

import "github.com/spboyer/bidlens/internal/models"

// SeatRow is one seat's line in the seat breakdown.
type SeatRow struct {
	Seat      int
	N         int
	Games     int
	WinRate   float64
	MeanScore float64
	MAE       float64
}

// GroupMAE is a sample count with its mean absolute error.
type GroupMAE struct {
	N   int
	MAE float64
}

// LeaderSplit compares the seat leading the first trick with everyone else.
type LeaderSplit struct {
	FirstLeader    GroupMAE
	NotFirstLeader GroupMAE
}

// SeatBreakdown is the per-seat view of one agent type.
type SeatBreakdown struct {
	AIType string
	Seats  []SeatRow
	// Leader is nil when no sample records a dealer.
	Leader *LeaderSplit
}

// FirstLeader is the seat to the dealer's left, which leads the first trick.
func FirstLeader(dealer, numPlayers int) int {
	return (dealer + 1) % numPlayers
}

// BreakdownBySeat reports bid accuracy per seat for aiType together with that
// seat's win rate and mean final score taken from games.
func BreakdownBySeat(aiType string, samples []models.BidSample, games []models.GameSample, numPlayers int) SeatBreakdown {
	sb := SeatBreakdown{AIType: aiType}

	bySeat := GroupBy(samples, func(s models.BidSample) int { return s.Seat })
	for _, seat := range SortedKeys(bySeat) {
		group, _ := bySeat.Get(seat)
		row := SeatRow{Seat: seat, N: len(group), MAE: MAE(group)}

		var wins, total, scoreSum int
		for _, g := range games {
			if g.AIType != aiType || g.Seat != seat {
				continue
			}
			total++
			scoreSum += g.FinalScore
			if g.Won {
				wins++
			}
		}
		row.Games = total
		if total > 0 {
			row.WinRate = float64(wins) / float64(total) * 100
			row.MeanScore = float64(scoreSum) / float64(total)
		}
		sb.Seats = append(sb.Seats, row)
	}

	var first, rest []models.BidSample
	hasDealer := false
	for _, s := range samples {
		if s.Dealer == nil {
			continue
		}
		hasDealer = true
		if s.Seat == FirstLeader(*s.Dealer, numPlayers) {
			first = append(first, s)
		} else {
			rest = append(rest, s)
		}
	}
	if hasDealer {
		sb.Leader = &LeaderSplit{
			FirstLeader:    GroupMAE{N: len(first), MAE: MAE(first)},
			NotFirstLeader: GroupMAE{N: len(rest), MAE: MAE(rest)},
		}
	}
	return sb
}
