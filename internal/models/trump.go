package models

// NoTrumps is the canonical label for a round played without a trump suit.
const NoTrumps = "No Trumps"

// Spellings of "no trump" written by different simulator versions: the Debug
// rendering of the enum and its serde name.
const (
	noTrumpsDebug = "NoTrumps"
	noTrumpsSerde = "NO_TRUMPS"
)

// NormalizeTrump maps a possibly absent trump value to its report label.
// Absent and both alternate no-trump spellings become NoTrumps.
func NormalizeTrump(trump *string) string {
	if trump == nil {
		return NoTrumps
	}
	return NormalizeTrumpLabel(*trump)
}

// NormalizeTrumpLabel is NormalizeTrump for a present value. It is idempotent.
func NormalizeTrumpLabel(trump string) string {
	switch trump {
	case noTrumpsDebug, noTrumpsSerde:
		return NoTrumps
	default:
		return trump
	}
}
