package extract

import "github.com/spboyer/bidlens/internal/models"

// Source records how a round's auction winner was determined.
type Source uint8

const (
	SourceUnknown Source = iota
	// SourceTrumpSelector means the log named the seat that chose trump.
	SourceTrumpSelector
	// SourceHighestBid means the seat was inferred from the bids.
	SourceHighestBid
)

func (s Source) String() string {
	switch s {
	case SourceTrumpSelector:
		return "trump_selector"
	case SourceHighestBid:
		return "highest_bid"
	default:
		return "unknown"
	}
}

// SeatResolution is either a known seat with the source it came from, or unknown.
type SeatResolution struct {
	Seat   int
	Source Source
}

// Known reports whether a seat was resolved.
func (r SeatResolution) Known() bool { return r.Source != SourceUnknown }

// Is answers "is seat the resolved seat?" and stays unknown when nothing was resolved.
func (r SeatResolution) Is(seat int) models.Tristate {
	if !r.Known() {
		return models.TriUnknown
	}
	return models.Known(r.Seat == seat)
}

// ResolveHighestBidder prefers the recorded trump selector. Without one, the
// seat with the strictly greatest bid wins, earliest seat first on ties. A
// round with no bids at all resolves to unknown.
func ResolveHighestBidder(r *models.RoundRecord) SeatResolution {
	if r.TrumpSelector != nil {
		return SeatResolution{Seat: *r.TrumpSelector, Source: SourceTrumpSelector}
	}

	res := SeatResolution{}
	best := 0
	for seat, bid := range r.Bids {
		if bid == nil {
			continue
		}
		if !res.Known() || *bid > best {
			best = *bid
			res = SeatResolution{Seat: seat, Source: SourceHighestBid}
		}
	}
	return res
}

// ResolveTrumpChooser only trusts the recorded trump selector.
func ResolveTrumpChooser(r *models.RoundRecord) SeatResolution {
	if r.TrumpSelector == nil {
		return SeatResolution{}
	}
	return SeatResolution{Seat: *r.TrumpSelector, Source: SourceTrumpSelector}
}
