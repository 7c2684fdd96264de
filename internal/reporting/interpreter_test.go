package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretMAE(t *testing.T) {
	tests := []struct {
		name string
		mae  float64
		want string
	}{
		{"perfect", 0.0, "Sharp (MAE < 0.5)"},
		{"sharp", 0.49, "Sharp (MAE < 0.5)"},
		{"good boundary", 0.5, "Good (MAE 0.5-1.0)"},
		{"good", 0.9, "Good (MAE 0.5-1.0)"},
		{"loose boundary", 1.0, "Loose (MAE 1.0-1.5)"},
		{"poor boundary", 1.5, "Poor (MAE >= 1.5)"},
		{"poor", 3.2, "Poor (MAE >= 1.5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretMAE(tt.mae))
		})
	}
}

func TestInterpretBias(t *testing.T) {
	tests := []struct {
		name    string
		meanErr float64
		want    string
	}{
		{"balanced zero", 0, "Balanced: no systematic over- or underbidding"},
		{"balanced small negative", -0.05, "Balanced: no systematic over- or underbidding"},
		{"overbid", -0.75, "Tends to overbid (0.75 tricks per hand)"},
		{"underbid", 1.25, "Tends to underbid (1.25 tricks per hand)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretBias(tt.meanErr))
		})
	}
}

func TestInterpretExactRate(t *testing.T) {
	assert.Equal(t, "Most contracts made exactly (75%)", InterpretExactRate(75))
	assert.Equal(t, "About half the contracts made exactly (40%)", InterpretExactRate(40))
	assert.Equal(t, "Few contracts made exactly (10%)", InterpretExactRate(10))
}

func TestInterpretTotalsDeviation(t *testing.T) {
	assert.Equal(t, "bids add up to the hand size", InterpretTotalsDeviation(0.05))
	assert.Contains(t, InterpretTotalsDeviation(-1.2), "underbid table")
	assert.Contains(t, InterpretTotalsDeviation(0.8), "overbid table")
}
