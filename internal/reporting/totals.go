package reporting

import (
	"fmt"

	"github.com/spboyer/bidlens/internal/analysis"
)

// BuildTotalsDocument lays out bid totals against hand size and the
// distribution of individual bids.
func BuildTotalsDocument(t analysis.BidTotals, games int, source string) *Document {
	d := &Document{}
	if source != "" {
		d.Title = fmt.Sprintf("Loaded %d games from %s", games, source)
	}

	d.heading(1, "Bid Totals vs Hand Size")
	d.para(fmt.Sprintf("Fully bid rounds: %d", t.Rounds))

	tt := newTable(
		right("Hand size"),
		right("Rounds"),
		right("Avg total bid"),
		right("Deviation"),
		right("Below"),
		right("Equal"),
		right("Above"),
		left("Reading"),
	)
	for _, hs := range t.ByHandSize {
		tt.add(
			itoa(hs.HandSize),
			itoa(hs.Rounds),
			f2(hs.AvgTotalBid),
			signedF2(hs.Deviation),
			fmt.Sprintf("%d (%s)", hs.Below, pct(hs.BelowPct)),
			fmt.Sprintf("%d (%s)", hs.Equal, pct(hs.EqualPct)),
			fmt.Sprintf("%d (%s)", hs.Above, pct(hs.AbovePct)),
			InterpretTotalsDeviation(hs.Deviation),
		)
	}
	d.table(tt)

	d.heading(1, "Individual Bid Distribution")
	dt := newTable(right("Bid"), right("Count"), right("Share"))
	for _, bf := range t.Distribution {
		dt.add(itoa(bf.Bid), itoa(bf.Count), pct(bf.Pct))
	}
	d.table(dt)
	return d
}
