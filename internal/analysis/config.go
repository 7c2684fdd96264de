// Package analysis turns extracted bid and game samples into the grouped
// statistics shown in the bid accuracy report. Every function is a pure
// reduction over its inputs; none of them modify the samples they are given.
package analysis

import (
	"errors"
	"fmt"

	"github.com/spboyer/bidlens/internal/models"
)

// Defaults used when no configuration file overrides them.
const (
	DefaultHistogramMin            = -6
	DefaultHistogramMax            = 6
	DefaultHistogramBarScale       = 2
	DefaultBonusPoints             = 10
	DefaultTrumpDisparityThreshold = 0.5
	DefaultNumPlayers              = 4
	DefaultBootstrapIterations     = 1000
	// MAEConfidenceLevel is the coverage of the reported MAE interval.
	MAEConfidenceLevel = 0.95
)

// HandSizeBucket is an inclusive range of hand sizes reported together.
type HandSizeBucket struct {
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Label string `yaml:"label"`
}

// Contains reports whether handSize falls inside the bucket.
func (b HandSizeBucket) Contains(handSize int) bool {
	return handSize >= b.Min && handSize <= b.Max
}

// Config carries every tunable constant of the analysis.
type Config struct {
	HistogramMin            int
	HistogramMax            int
	HistogramBarScale       float64
	BonusPoints             int
	TrumpDisparityThreshold float64
	NumPlayers              int
	// BootstrapIterations is the resample count of the MAE interval; 0 disables it.
	BootstrapIterations int
	HandSizeBuckets     []HandSizeBucket
	// TrumpTypes are always listed in trump frequency tables, in this order.
	TrumpTypes []string
}

// DefaultHandSizeBuckets returns the standard 2-5, 6-9 and 10-13 buckets.
func DefaultHandSizeBuckets() []HandSizeBucket {
	return []HandSizeBucket{
		{Min: 2, Max: 5, Label: "2-5"},
		{Min: 6, Max: 9, Label: "6-9"},
		{Min: 10, Max: 13, Label: "10-13"},
	}
}

// DefaultTrumpTypes returns the four suits followed by no trumps.
func DefaultTrumpTypes() []string {
	return []string{"Clubs", "Diamonds", "Hearts", "Spades", models.NoTrumps}
}

// DefaultConfig returns the configuration used by the simulator's own reports.
func DefaultConfig() Config {
	return Config{
		HistogramMin:            DefaultHistogramMin,
		HistogramMax:            DefaultHistogramMax,
		HistogramBarScale:       DefaultHistogramBarScale,
		BonusPoints:             DefaultBonusPoints,
		TrumpDisparityThreshold: DefaultTrumpDisparityThreshold,
		NumPlayers:              DefaultNumPlayers,
		BootstrapIterations:     DefaultBootstrapIterations,
		HandSizeBuckets:         DefaultHandSizeBuckets(),
		TrumpTypes:              DefaultTrumpTypes(),
	}
}

// Validate reports every inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.HistogramMin >= c.HistogramMax {
		errs = append(errs, fmt.Errorf("histogram min (%d) must be below max (%d)", c.HistogramMin, c.HistogramMax))
	}
	if c.HistogramBarScale <= 0 {
		errs = append(errs, fmt.Errorf("histogram bar scale must be positive, got %g", c.HistogramBarScale))
	}
	if c.NumPlayers <= 0 {
		errs = append(errs, fmt.Errorf("player count must be positive, got %d", c.NumPlayers))
	}
	if c.BonusPoints < 0 {
		errs = append(errs, fmt.Errorf("bonus points must not be negative, got %d", c.BonusPoints))
	}
	if c.TrumpDisparityThreshold < 0 {
		errs = append(errs, fmt.Errorf("trump disparity threshold must not be negative, got %g", c.TrumpDisparityThreshold))
	}
	if c.BootstrapIterations < 0 {
		errs = append(errs, fmt.Errorf("bootstrap iterations must not be negative, got %d", c.BootstrapIterations))
	}
	for _, b := range c.HandSizeBuckets {
		if b.Min > b.Max {
			errs = append(errs, fmt.Errorf("hand size bucket %q: min %d is above max %d", b.Label, b.Min, b.Max))
		}
	}
	return errors.Join(errs...)
}
