package analysis

import "github.com/spboyer/bidlens/internal/models"

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// sample builds a bid sample with consistent error fields.
func sample(ai string, bid, actual int) models.BidSample {
	e := actual - bid
	abs := e
	if abs < 0 {
		abs = -abs
	}
	return models.BidSample{
		AIType:       ai,
		GameID:       "1",
		HandSize:     5,
		Bid:          bid,
		ActualTricks: actual,
		Error:        e,
		AbsError:     abs,
		Trump:        "Hearts",
		Exact:        e == 0,
	}
}

func withSeat(s models.BidSample, seat int) models.BidSample {
	s.Seat = seat
	return s
}

func withTrump(s models.BidSample, trump string) models.BidSample {
	s.Trump = trump
	return s
}

func withHandSize(s models.BidSample, hs int) models.BidSample {
	s.HandSize = hs
	return s
}
