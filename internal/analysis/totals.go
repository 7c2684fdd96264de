package analysis

import (
	"github.com/spboyer/bidlens/internal/metrics"
	"github.com/spboyer/bidlens/internal/models"
)

// HandSizeTotals compares the sum of all bids in a round with the number of
// tricks available, over every fully bid round of one hand size.
type HandSizeTotals struct {
	HandSize    int
	Rounds      int
	AvgTotalBid float64
	// Deviation is AvgTotalBid - HandSize.
	Deviation float64
	Below     int
	Equal     int
	Above     int
	BelowPct  float64
	EqualPct  float64
	AbovePct  float64
}

// BidFrequency is how often a single bid value was placed.
type BidFrequency struct {
	Bid   int
	Count int
	Pct   float64
}

// BidTotals is the result of ComputeBidTotals.
type BidTotals struct {
	Rounds       int
	ByHandSize   []HandSizeTotals
	Distribution []BidFrequency
}

type totalsAcc struct {
	rounds, sum, below, equal, above int
}

// ComputeBidTotals looks only at rounds where every seat bid. A persistent
// negative deviation means the table underbids and tricks are being forced on
// players who did not want them.
func ComputeBidTotals(games []models.GameRecord, numPlayers int) BidTotals {
	var rounds []models.RoundRecord
	for i := range games {
		for _, r := range games[i].Rounds {
			if r.AllBidsPresent(numPlayers) {
				rounds = append(rounds, r)
			}
		}
	}

	byHand := Accumulate(rounds, func(r models.RoundRecord) int { return r.HandSize },
		func(acc totalsAcc, r models.RoundRecord) totalsAcc {
			total := 0
			for _, b := range r.Bids[:numPlayers] {
				total += *b
			}
			acc.rounds++
			acc.sum += total
			switch {
			case total < r.HandSize:
				acc.below++
			case total == r.HandSize:
				acc.equal++
			default:
				acc.above++
			}
			return acc
		})

	var bids []int
	for _, r := range rounds {
		for _, b := range r.Bids[:numPlayers] {
			bids = append(bids, *b)
		}
	}
	dist := Accumulate(bids, func(b int) int { return b }, func(n, _ int) int { return n + 1 })

	bt := BidTotals{Rounds: len(rounds)}
	for _, hs := range SortedKeys(byHand) {
		acc, _ := byHand.Get(hs)
		avg := float64(acc.sum) / float64(acc.rounds)
		bt.ByHandSize = append(bt.ByHandSize, HandSizeTotals{
			HandSize:    hs,
			Rounds:      acc.rounds,
			AvgTotalBid: avg,
			Deviation:   avg - float64(hs),
			Below:       acc.below,
			Equal:       acc.equal,
			Above:       acc.above,
			BelowPct:    metrics.Percent(acc.below, acc.rounds),
			EqualPct:    metrics.Percent(acc.equal, acc.rounds),
			AbovePct:    metrics.Percent(acc.above, acc.rounds),
		})
	}
	for _, b := range SortedKeys(dist) {
		n, _ := dist.Get(b)
		bt.Distribution = append(bt.Distribution, BidFrequency{Bid: b, Count: n, Pct: metrics.Percent(n, len(bids))})
	}
	return bt
}
