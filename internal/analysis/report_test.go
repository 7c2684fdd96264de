package analysis

import (
	"testing"

	"github.com/spboyer/bidlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	games := []models.GameRecord{
		{
			GameID: "1",
			Config: models.GameConfig{AITypes: []string{"zeta", "alpha", "zeta", "alpha"}},
			Rounds: []models.RoundRecord{{Trump: strPtr("Hearts")}, {Trump: strPtr("Spades")}},
		},
	}
	bidSamples := []models.BidSample{
		withTrump(withSeat(sample("zeta", 1, 4), 0), "Hearts"),
		withTrump(withSeat(sample("zeta", 2, 2), 2), "Spades"),
		withTrump(withSeat(sample("alpha", 1, 1), 1), "Hearts"),
		withTrump(withSeat(sample("alpha", 3, 2), 3), "Spades"),
	}
	gameSamples := []models.GameSample{
		{AIType: "zeta", Seat: 0, Won: true, FinalScore: 40},
		{AIType: "alpha", Seat: 1, FinalScore: 20},
		{AIType: "zeta", Seat: 2, FinalScore: 10},
		{AIType: "alpha", Seat: 3, FinalScore: 30},
	}

	r := Build(games, bidSamples, gameSamples, DefaultConfig())

	assert.Equal(t, 1, r.Games)
	assert.Empty(t, r.SameAIType)
	assert.Equal(t, 2, r.Rounds.TotalRounds)
	require.Len(t, r.Agents, 2)
	assert.Equal(t, "alpha", r.Agents[0].AIType)
	assert.Equal(t, "zeta", r.Agents[1].AIType)
	assert.Equal(t, 2, r.Agents[1].Histogram.Total())

	iv := r.Agents[1].MAEInterval
	assert.True(t, iv.Valid())
	assert.InDelta(t, 1.5, iv.Mean, 1e-9)
	assert.LessOrEqual(t, iv.Lower, 1.5)
	assert.GreaterOrEqual(t, iv.Upper, 1.5)
	assert.GreaterOrEqual(t, iv.Lower, 0.0)
	assert.LessOrEqual(t, iv.Upper, 3.0)

	// zeta: Hearts MAE 3, Spades MAE 0. alpha: Hearts 0, Spades 1.
	require.Len(t, r.TrumpBreakdowns, 2)
	assert.Equal(t, "alpha", r.TrumpBreakdowns[0].AIType)
	assert.InDelta(t, 3.0, r.TrumpBreakdowns[1].MAERange, 1e-9)
	assert.Equal(t, "Hearts", r.TrumpBreakdowns[1].ByTrump[0].Trump)

	require.Len(t, r.Scores, 2)
	assert.Equal(t, "alpha", r.Scores[0].AIType)
	assert.InDelta(t, 50.0, r.Scores[1].WinRate, 1e-9)

	assert.Nil(t, r.Agents[0].Auction, "no auction data in samples")
}

func TestBuild_BootstrapDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BootstrapIterations = 0
	bids := []models.BidSample{sample("solo", 1, 2), sample("solo", 2, 2)}

	r := Build(nil, bids, nil, cfg)
	require.Len(t, r.Agents, 1)
	assert.False(t, r.Agents[0].MAEInterval.Valid())
}

func TestBuild_SameAIType(t *testing.T) {
	games := []models.GameRecord{
		{Config: models.GameConfig{AITypes: []string{"solo", "solo", "solo", "solo"}}},
		{Config: models.GameConfig{AITypes: []string{"solo", "solo", "solo", "solo"}}},
	}
	r := Build(games, nil, nil, DefaultConfig())
	assert.Equal(t, "solo", r.SameAIType)
	assert.Empty(t, r.Agents)
}
