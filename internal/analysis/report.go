package analysis

import (
	"slices"

	"github.com/spboyer/bidlens/internal/metrics"
	"github.com/spboyer/bidlens/internal/models"
)

// bootstrapSeed keeps MAE intervals identical across runs over the same log.
const bootstrapSeed = 20240601

// HandSizeStats is the bid accuracy of one hand size.
type HandSizeStats struct {
	HandSize int
	Stats    BidStats
}

// TrumpStats is the bid accuracy under one normalized trump.
type TrumpStats struct {
	Trump string
	Stats BidStats
}

// TrumpBreakdown is shown only for agent types with a trump disparity.
type TrumpBreakdown struct {
	AIType   string
	MAERange float64
	ByTrump  []TrumpStats
}

// AuctionReport holds the bid accuracy of auction winners and everyone else.
type AuctionReport struct {
	Field      AuctionField
	Highest    BidStats
	NotHighest BidStats
	Unknown    int
}

// AgentReport collects every per-agent section of the report.
type AgentReport struct {
	AIType              string
	Overall             BidStats
	MAEInterval         metrics.Interval
	Histogram           Histogram
	ByHandSize          []HandSizeStats
	Seats               SeatBreakdown
	Auction             *AuctionReport
	Calibration         []CalibrationRow
	CalibrationByBucket []BucketCalibration
	Conversion          ContractConversion
}

// Report is the complete set of numbers behind the bid accuracy report.
type Report struct {
	Games int
	// SameAIType is set when every seat of every game ran the same agent type.
	SameAIType        string
	Rounds            RoundInsights
	Agents            []AgentReport
	TrumpBreakdowns   []TrumpBreakdown
	Scores            []ScoreMetrics
	BidSampleCount    int
	GameSampleCount   int
	HistogramBarScale float64
}

// Build runs every aggregation over the extracted samples. Agent sections are
// ordered by agent type name.
func Build(games []models.GameRecord, bids []models.BidSample, gameSamples []models.GameSample, cfg Config) *Report {
	r := &Report{
		Games:             len(games),
		SameAIType:        sameAIType(games),
		Rounds:            ComputeRoundInsights(games, cfg.TrumpTypes),
		BidSampleCount:    len(bids),
		GameSampleCount:   len(gameSamples),
		HistogramBarScale: cfg.HistogramBarScale,
	}

	byAI := GroupBy(bids, func(s models.BidSample) string { return s.AIType })
	for _, ai := range SortedKeys(byAI) {
		samples, _ := byAI.Get(ai)
		r.Agents = append(r.Agents, buildAgent(ai, samples, gameSamples, cfg))

		if d, ok := DetectTrumpDisparity(ai, samples, cfg.TrumpDisparityThreshold); ok {
			tb := TrumpBreakdown{AIType: ai, MAERange: d.MAERange}
			for _, trump := range SortedKeys(d.ByTrump) {
				group, _ := d.ByTrump.Get(trump)
				tb.ByTrump = append(tb.ByTrump, TrumpStats{Trump: trump, Stats: ComputeBidStats(group)})
			}
			r.TrumpBreakdowns = append(r.TrumpBreakdowns, tb)
		}
	}

	byAIGames := GroupBy(gameSamples, func(g models.GameSample) string { return g.AIType })
	for _, ai := range SortedKeys(byAIGames) {
		games, _ := byAIGames.Get(ai)
		agentBids, _ := byAI.Get(ai)
		r.Scores = append(r.Scores, ComputeScoreMetrics(ai, games, agentBids, cfg.BonusPoints))
	}
	return r
}

func buildAgent(ai string, samples []models.BidSample, gameSamples []models.GameSample, cfg Config) AgentReport {
	overall := ComputeBidStats(samples)
	ar := AgentReport{
		AIType:              ai,
		Overall:             overall,
		MAEInterval:         metrics.BootstrapMean(overall.AbsErrors, MAEConfidenceLevel, cfg.BootstrapIterations, bootstrapSeed),
		Histogram:           NewHistogram(overall.Errors, cfg.HistogramMin, cfg.HistogramMax),
		Seats:               BreakdownBySeat(ai, samples, gameSamples, cfg.NumPlayers),
		Calibration:         Calibrate(samples),
		CalibrationByBucket: CalibrateByHandSize(samples, cfg.HandSizeBuckets),
		Conversion:          ComputeContractConversion(ai, samples, cfg.BonusPoints),
	}

	byHand := GroupBy(samples, func(s models.BidSample) int { return s.HandSize })
	for _, hs := range SortedKeys(byHand) {
		group, _ := byHand.Get(hs)
		ar.ByHandSize = append(ar.ByHandSize, HandSizeStats{HandSize: hs, Stats: ComputeBidStats(group)})
	}

	if split, ok := SplitAuction(samples); ok {
		ar.Auction = &AuctionReport{
			Field:      split.Field,
			Highest:    ComputeBidStats(split.Highest),
			NotHighest: ComputeBidStats(split.NotHighest),
			Unknown:    len(split.Unknown),
		}
	}
	return ar
}

func sameAIType(games []models.GameRecord) string {
	var seen []string
	for i := range games {
		for _, ai := range games[i].Config.AITypes {
			if !slices.Contains(seen, ai) {
				seen = append(seen, ai)
			}
		}
	}
	if len(seen) == 1 {
		return seen[0]
	}
	return ""
}
