package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestGameRecord_AITypeOutOfRange(t *testing.T) {
	g := &GameRecord{Config: GameConfig{AITypes: []string{"heuristic", "random"}}}
	assert.Equal(t, "random", g.AIType(1))
	assert.Equal(t, UnknownAIType, g.AIType(3))
	assert.Equal(t, UnknownAIType, g.AIType(-1))
}

func TestGameRecord_FinalScoreShortList(t *testing.T) {
	g := &GameRecord{Result: GameResult{FinalScores: []int{40, 12}}}
	assert.Equal(t, 12, g.FinalScore(1))
	assert.Equal(t, 0, g.FinalScore(2))
}

func TestRoundRecord_ScoreAt(t *testing.T) {
	r := &RoundRecord{Scores: []int{13, -2}}
	assert.Equal(t, 13, r.ScoreAt(0))
	assert.Equal(t, 0, r.ScoreAt(3))
}

func TestRoundRecord_AllBidsPresent(t *testing.T) {
	tests := []struct {
		name string
		bids []*int
		want bool
	}{
		{"all present", []*int{intPtr(1), intPtr(0), intPtr(3), intPtr(2)}, true},
		{"one missing", []*int{intPtr(1), nil, intPtr(3), intPtr(2)}, false},
		{"short list", []*int{intPtr(1), intPtr(2)}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RoundRecord{Bids: tt.bids}
			assert.Equal(t, tt.want, r.AllBidsPresent(4))
		})
	}
}
