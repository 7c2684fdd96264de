package reporting

import (
	"fmt"
	"math"
)

// InterpretMAE returns a plain-language label for a mean absolute bid error.
func InterpretMAE(mae float64) string {
	switch {
	case mae < 0.5:
		return "Sharp (MAE < 0.5)"
	case mae < 1.0:
		return "Good (MAE 0.5-1.0)"
	case mae < 1.5:
		return "Loose (MAE 1.0-1.5)"
	default:
		return "Poor (MAE >= 1.5)"
	}
}

// biasTolerance is the mean error below which bidding counts as unbiased.
const biasTolerance = 0.1

// InterpretBias explains the direction of the mean bid error.
func InterpretBias(meanErr float64) string {
	switch {
	case math.Abs(meanErr) < biasTolerance:
		return "Balanced: no systematic over- or underbidding"
	case meanErr < 0:
		return fmt.Sprintf("Tends to overbid (%.2f tricks per hand)", -meanErr)
	default:
		return fmt.Sprintf("Tends to underbid (%.2f tricks per hand)", meanErr)
	}
}

// InterpretExactRate returns a label for the share of exact bids (0-100).
func InterpretExactRate(pct float64) string {
	switch {
	case pct >= 60:
		return fmt.Sprintf("Most contracts made exactly (%.0f%%)", pct)
	case pct >= 40:
		return fmt.Sprintf("About half the contracts made exactly (%.0f%%)", pct)
	default:
		return fmt.Sprintf("Few contracts made exactly (%.0f%%)", pct)
	}
}

// InterpretTotalsDeviation explains how the table's total bid compares with
// the tricks available.
func InterpretTotalsDeviation(dev float64) string {
	switch {
	case math.Abs(dev) < biasTolerance:
		return "bids add up to the hand size"
	case dev < 0:
		return "underbid table: tricks are forced on seats that did not want them"
	default:
		return "overbid table: someone must miss their contract"
	}
}
