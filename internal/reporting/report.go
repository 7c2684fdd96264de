// Package reporting lays out analysis results as text, markdown or HTML and
// writes the machine-readable companions (JUnit XML, charts).
package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/spboyer/bidlens/internal/analysis"
)

// BuildDocument lays out every report section in its fixed order.
func BuildDocument(r *analysis.Report, source string) *Document {
	d := &Document{}
	if source != "" {
		d.Title = fmt.Sprintf("Loaded %d games from %s", r.Games, source)
	}

	if r.SameAIType != "" {
		d.para(
			fmt.Sprintf("NOTE: All seats use the same AI type: %s", r.SameAIType),
			"Positional and auction statistics compare the same AI in different roles.",
		)
	}

	roundInsights(d, r.Rounds)
	terminology(d)
	overall(d, r)
	byHandSize(d, r.Agents)
	byTrump(d, r.TrumpBreakdowns)
	bySeat(d, r.Agents)
	auction(d, r.Agents)
	calibration(d, r.Agents)
	scoreMetrics(d, r.Scores)
	conversion(d, r.Agents)
	return d
}

// AppendExport adds the export notice printed after a successful export.
func AppendExport(d *Document, path string, records int, trigger string) {
	d.heading(1, "Export")
	lines := []string{fmt.Sprintf("Exported %d records to: %s", records, path)}
	if trigger != "" {
		lines = append(lines, "Export enabled via "+trigger)
	}
	d.para(lines...)
}

func roundInsights(d *Document, ri analysis.RoundInsights) {
	d.heading(1, "Round-Level Insights")
	d.para(fmt.Sprintf("Total rounds analyzed: %d", ri.TotalRounds))

	t := newTable(left("Trump"), right("Rounds"), right("Share"))
	for _, tc := range ri.Trumps {
		t.add(tc.Trump, itoa(tc.Count), pct(tc.Pct))
	}
	d.table(t)
}

func terminology(d *Document) {
	d.heading(1, "Terminology")
	d.para(
		"error = actual_tricks - bid",
		"error > 0: underbid (bid too low, took more tricks than bid)",
		"error < 0: overbid (bid too high, took fewer tricks than bid)",
		"error = 0: exact match, earns the bonus",
		"MAE: mean absolute error; RMSE: root mean squared error",
	)
}

func overall(d *Document, r *analysis.Report) {
	d.heading(1, "Bid Accuracy & Error Distribution (Overall)")
	for _, a := range r.Agents {
		st := a.Overall
		d.heading(2, a.AIType)

		t := newTable(left("Metric"), right("Value"))
		t.add("N", itoa(st.N))
		t.add("Exact", pct(st.ExactPct))
		t.add("Overbid", pct(st.OverPct))
		t.add("Underbid", pct(st.UnderPct))
		t.add("Mean error", f2(st.MeanError))
		t.add("Median error", f2(st.Error.Median))
		t.add("StdDev error", f2(st.Error.StdDev))
		t.add("MAE", f2(st.MAE))
		if iv := a.MAEInterval; iv.Valid() {
			t.add(fmt.Sprintf("MAE %.0f%% CI", iv.Level*100), fmt.Sprintf("[%s, %s]", f2(iv.Lower), f2(iv.Upper)))
		}
		t.add("RMSE", f2(st.RMSE))
		d.table(t)

		if st.N > 0 {
			d.para(
				"Accuracy: "+InterpretMAE(st.MAE),
				"Bias: "+InterpretBias(st.MeanError),
				"Contracts: "+InterpretExactRate(st.ExactPct),
			)
		}

		d.heading(3, "Error distribution")
		d.table(histogramTable(a.Histogram, st.N, r.HistogramBarScale))
	}
}

func histogramTable(h analysis.Histogram, n int, barScale float64) *Table {
	t := newTable(right("Error"), right("Count"), right("Share"), left(""))
	for _, b := range h.Buckets() {
		share := 0.0
		if n > 0 {
			share = float64(b.Count) / float64(n) * 100
		}
		t.add(b.Label, itoa(b.Count), pct(share), bar(share, barScale))
	}
	return t
}

// bar draws one '#' per barScale percent.
func bar(share, barScale float64) string {
	if barScale <= 0 {
		return ""
	}
	return strings.Repeat("#", int(math.Floor(share/barScale)))
}

// statsColumns are shared by every per-group accuracy table.
func statsColumns(first Column) []Column {
	return []Column{
		first,
		right("N"),
		right("Exact"),
		right("Overbid"),
		right("Underbid"),
		right("Bid"),
		right("Actual"),
		right("Error"),
		right("MAE"),
	}
}

func statsCells(label string, st analysis.BidStats) []string {
	return []string{
		label,
		itoa(st.N),
		pct(st.ExactPct),
		pct(st.OverPct),
		pct(st.UnderPct),
		f1(st.MeanBid),
		f1(st.MeanActual),
		f2(st.MeanError),
		f2(st.MAE),
	}
}

func byHandSize(d *Document, agents []analysis.AgentReport) {
	d.heading(1, "Breakdown by Hand Size")
	for _, a := range agents {
		d.heading(2, a.AIType)
		t := newTable(statsColumns(right("Hand size"))...)
		for _, hs := range a.ByHandSize {
			t.add(statsCells(itoa(hs.HandSize), hs.Stats)...)
		}
		d.table(t)
	}
}

func byTrump(d *Document, breakdowns []analysis.TrumpBreakdown) {
	if len(breakdowns) == 0 {
		return
	}
	d.heading(1, "Breakdown by Trump Type")
	d.para(
		"Note: Shown because significant performance disparity detected across trump types.",
		"This may indicate AI issues with specific trump types.",
	)
	for _, tb := range breakdowns {
		d.heading(2, fmt.Sprintf("%s (MAE range: %.2f)", tb.AIType, tb.MAERange))
		t := newTable(statsColumns(left("Trump"))...)
		for _, ts := range tb.ByTrump {
			t.add(statsCells(ts.Trump, ts.Stats)...)
		}
		d.table(t)
	}
}

func bySeat(d *Document, agents []analysis.AgentReport) {
	d.heading(1, "Breakdown by Seat")
	for _, a := range agents {
		d.heading(2, a.AIType)
		t := newTable(right("Seat"), right("N"), right("Games"), right("Win rate"), right("Mean score/game"), right("MAE"))
		for _, s := range a.Seats.Seats {
			t.add(itoa(s.Seat), itoa(s.N), itoa(s.Games), pct(s.WinRate), f1(s.MeanScore), f2(s.MAE))
		}
		d.table(t)

		if l := a.Seats.Leader; l != nil {
			d.heading(3, a.AIType+" - First Leader Analysis")
			lt := newTable(left("Role"), right("N"), right("MAE"))
			if l.FirstLeader.N > 0 {
				lt.add("First leader", itoa(l.FirstLeader.N), f2(l.FirstLeader.MAE))
			}
			if l.NotFirstLeader.N > 0 {
				lt.add("Not first leader", itoa(l.NotFirstLeader.N), f2(l.NotFirstLeader.MAE))
			}
			d.table(lt)
		}
	}
}

func auction(d *Document, agents []analysis.AgentReport) {
	d.heading(1, "Auction Dynamics")
	for _, a := range agents {
		if a.Auction == nil {
			continue
		}
		d.heading(2, a.AIType)
		t := newTable(statsColumns(left("Role"))...)
		if a.Auction.Highest.N > 0 {
			t.add(statsCells("Highest bidder", a.Auction.Highest)...)
		}
		if a.Auction.NotHighest.N > 0 {
			t.add(statsCells("Not highest bidder", a.Auction.NotHighest)...)
		}
		d.table(t)

		notes := []string{"Split on: " + string(a.Auction.Field)}
		if a.Auction.Unknown > 0 {
			notes = append(notes, fmt.Sprintf("Unknown role (excluded): %d", a.Auction.Unknown))
		}
		d.para(notes...)
	}
}

func calibration(d *Document, agents []analysis.AgentReport) {
	d.heading(1, "Calibration Tables (Bid -> Outcome Mapping)")
	for _, a := range agents {
		d.heading(2, a.AIType+" - By Bid Value")
		d.table(calibrationTable(a.Calibration))

		if len(a.CalibrationByBucket) == 0 {
			continue
		}
		d.heading(2, a.AIType+" - By Hand-Size Buckets")
		for _, bc := range a.CalibrationByBucket {
			d.heading(3, "Hand size "+bc.Bucket.Label)
			d.table(calibrationTable(bc.Rows))
		}
	}
}

func calibrationTable(rows []analysis.CalibrationRow) *Table {
	t := newTable(right("Bid"), right("Count"), right("Avg Actual"), right("Mean Error"))
	for _, row := range rows {
		t.add(itoa(row.Bid), itoa(row.Count), f2(row.AvgActual), f2(row.MeanError))
	}
	return t
}

func scoreMetrics(d *Document, scores []analysis.ScoreMetrics) {
	d.heading(1, "Score Metrics (Objective Performance)")
	t := newTable(
		left("AI type"),
		right("Games"),
		right("Win rate"),
		right("Avg score/game"),
		right("StdDev score/game"),
		right("Avg points/hand"),
		right("Bonus hit rate"),
	)
	for _, s := range scores {
		t.add(s.AIType, itoa(s.Games), pct(s.WinRate), f1(s.AvgScore), f1(s.StdDevScore), f2(s.AvgPointsPerHand), pct(s.BonusHitRate))
	}
	d.table(t)
}

func conversion(d *Document, agents []analysis.AgentReport) {
	d.heading(1, "Round-Level Contract Conversion Stats")
	t := newTable(
		left("AI type"),
		right("Avg bid"),
		right("Avg actual tricks"),
		right("Avg bonus points/hand"),
		right("Avg tricks points/hand"),
		right("Total avg points/hand"),
	)
	for _, a := range agents {
		c := a.Conversion
		t.add(c.AIType, f2(c.AvgBid), f2(c.AvgActual), f2(c.AvgBonusPoints), f2(c.AvgTrickPoints), f2(c.TotalPoints()))
	}
	d.table(t)
}
