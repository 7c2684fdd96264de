package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/bidlens/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleGame() models.GameRecord {
	return models.GameRecord{
		GameID: "7",
		Config: models.GameConfig{AITypes: []string{"greedy", "random", "greedy", "mcts"}},
		Result: models.GameResult{Winner: 2, FinalScores: []int{30, 12, 41}},
		Rounds: []models.RoundRecord{
			{
				Index:    0,
				RoundNo:  1,
				HandSize: 5,
				Dealer:   intPtr(3),
				Trump:    strPtr("NoTrumps"),
				Bids:     bids(intPtr(3), nil, intPtr(5), intPtr(2)),
				Scores:   []int{13, 1},
				BidAccuracy: []models.BidAccuracyEntry{
					{Seat: 0, Bid: 3, Tricks: 3, Exact: true},
					{Seat: 2, Bid: 5, Tricks: 1},
					{Seat: 5, Bid: 1, Tricks: 2},
				},
			},
		},
	}
}

func TestBidSamples(t *testing.T) {
	g := sampleGame()
	got := BidSamples(&g, &g.Rounds[0])
	require.Len(t, got, 3)

	want := []models.BidSample{
		{
			AIType: "greedy", GameID: "7", RoundIndex: 0, HandSize: 5, Seat: 0,
			Bid: 3, ActualTricks: 3, Error: 0, AbsError: 0, Trump: models.NoTrumps,
			Dealer: intPtr(3), HighestBidder: models.TriFalse, ChoseTrump: models.TriUnknown,
			Exact: true, RoundScore: 13,
		},
		{
			AIType: "greedy", GameID: "7", RoundIndex: 0, HandSize: 5, Seat: 2,
			Bid: 5, ActualTricks: 1, Error: -4, AbsError: 4, Trump: models.NoTrumps,
			Dealer: intPtr(3), HighestBidder: models.TriTrue, ChoseTrump: models.TriUnknown,
			RoundScore: 0,
		},
		{
			AIType: models.UnknownAIType, GameID: "7", RoundIndex: 0, HandSize: 5, Seat: 5,
			Bid: 1, ActualTricks: 2, Error: 1, AbsError: 1, Trump: models.NoTrumps,
			Dealer: intPtr(3), HighestBidder: models.TriFalse, ChoseTrump: models.TriUnknown,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BidSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestBidSamplesWithTrumpSelector(t *testing.T) {
	g := sampleGame()
	g.Rounds[0].TrumpSelector = intPtr(0)

	got := BidSamples(&g, &g.Rounds[0])
	require.Len(t, got, 3)
	assert.Equal(t, models.TriTrue, got[0].HighestBidder)
	assert.Equal(t, models.TriTrue, got[0].ChoseTrump)
	assert.Equal(t, models.TriFalse, got[1].HighestBidder)
	assert.Equal(t, models.TriFalse, got[1].ChoseTrump)
}

func TestBidSamplesExactFollowsError(t *testing.T) {
	g := sampleGame()
	// The recorded flag disagrees with bid and tricks; the arithmetic wins.
	g.Rounds[0].BidAccuracy = []models.BidAccuracyEntry{{Seat: 1, Bid: 2, Tricks: 3, Exact: true}}

	got := BidSamples(&g, &g.Rounds[0])
	require.Len(t, got, 1)
	assert.False(t, got[0].Exact)
	assert.Equal(t, 1, got[0].Error)
}

func TestBidSamplesNoBidsUnknownHighest(t *testing.T) {
	g := sampleGame()
	g.Rounds[0].Bids = nil

	for _, s := range BidSamples(&g, &g.Rounds[0]) {
		assert.Equal(t, models.TriUnknown, s.HighestBidder)
	}
}

func TestGameSamples(t *testing.T) {
	g := sampleGame()
	got := GameSamples(&g)

	want := []models.GameSample{
		{AIType: "greedy", GameID: "7", Seat: 0, Won: false, FinalScore: 30},
		{AIType: "random", GameID: "7", Seat: 1, Won: false, FinalScore: 12},
		{AIType: "greedy", GameID: "7", Seat: 2, Won: true, FinalScore: 41},
		{AIType: "mcts", GameID: "7", Seat: 3, Won: false, FinalScore: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GameSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract(t *testing.T) {
	g1 := sampleGame()
	g2 := sampleGame()
	g2.GameID = "8"
	g2.Rounds = append(g2.Rounds, models.RoundRecord{
		Index:       2,
		HandSize:    6,
		BidAccuracy: []models.BidAccuracyEntry{{Seat: 3, Bid: 0, Tricks: 0}},
	})

	got := Extract([]models.GameRecord{g1, g2})
	assert.Len(t, got.Games, 8)
	require.Len(t, got.Bids, 7)

	last := got.Bids[6]
	assert.Equal(t, "8", last.GameID)
	assert.Equal(t, 2, last.RoundIndex)
	assert.Equal(t, "mcts", last.AIType)
	assert.Equal(t, models.NoTrumps, last.Trump)
	assert.True(t, last.Exact)
	assert.Nil(t, last.Dealer)
}

func TestExtractEmpty(t *testing.T) {
	got := Extract(nil)
	assert.Empty(t, got.Bids)
	assert.Empty(t, got.Games)
}
