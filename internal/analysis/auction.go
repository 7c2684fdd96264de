package analysis

import "github.com/spboyer/bidlens/internal/models"

// AuctionField names the sample field an auction split was decided on.
type AuctionField string

const (
	AuctionByHighestBidder AuctionField = "highest_bidder"
	AuctionByChoseTrump    AuctionField = "chose_trump"
)

// AuctionSplit partitions samples by whether the seat won the auction.
// Samples whose role is unknown are kept apart rather than counted as losers.
type AuctionSplit struct {
	Field      AuctionField
	Highest    []models.BidSample
	NotHighest []models.BidSample
	Unknown    []models.BidSample
}

// SplitAuction uses HighestBidder when any sample in the group knows it, and
// falls back to ChoseTrump only when HighestBidder is unknown for the whole
// group. It returns false when neither field is known anywhere.
func SplitAuction(samples []models.BidSample) (AuctionSplit, bool) {
	field, pick := auctionField(samples)
	if pick == nil {
		return AuctionSplit{}, false
	}

	split := AuctionSplit{Field: field}
	for _, s := range samples {
		v, ok := pick(s).Value()
		switch {
		case !ok:
			split.Unknown = append(split.Unknown, s)
		case v:
			split.Highest = append(split.Highest, s)
		default:
			split.NotHighest = append(split.NotHighest, s)
		}
	}
	return split, true
}

func auctionField(samples []models.BidSample) (AuctionField, func(models.BidSample) models.Tristate) {
	highest := func(s models.BidSample) models.Tristate { return s.HighestBidder }
	chose := func(s models.BidSample) models.Tristate { return s.ChoseTrump }
	if anyKnown(samples, highest) {
		return AuctionByHighestBidder, highest
	}
	if anyKnown(samples, chose) {
		return AuctionByChoseTrump, chose
	}
	return "", nil
}

func anyKnown(samples []models.BidSample, field func(models.BidSample) models.Tristate) bool {
	for _, s := range samples {
		if field(s).IsKnown() {
			return true
		}
	}
	return false
}
