package analysis

import "github.com/spboyer/bidlens/internal/models"

// CalibrationRow shows how a single declared bid value played out.
type CalibrationRow struct {
	Bid       int
	Count     int
	AvgActual float64
	MeanError float64
}

type calibrationAcc struct {
	count, actual, err int
}

// Calibrate groups samples by declared bid, ascending. The row counts sum to
// len(samples).
func Calibrate(samples []models.BidSample) []CalibrationRow {
	byBid := Accumulate(samples, func(s models.BidSample) int { return s.Bid },
		func(acc calibrationAcc, s models.BidSample) calibrationAcc {
			acc.count++
			acc.actual += s.ActualTricks
			acc.err += s.Error
			return acc
		})

	rows := make([]CalibrationRow, 0, byBid.Len())
	for _, bid := range SortedKeys(byBid) {
		acc, _ := byBid.Get(bid)
		rows = append(rows, CalibrationRow{
			Bid:       bid,
			Count:     acc.count,
			AvgActual: float64(acc.actual) / float64(acc.count),
			MeanError: float64(acc.err) / float64(acc.count),
		})
	}
	return rows
}

// BucketCalibration is a calibration table restricted to a hand-size bucket.
type BucketCalibration struct {
	Bucket HandSizeBucket
	Rows   []CalibrationRow
}

// CalibrateByHandSize builds one calibration table per bucket, skipping
// buckets that no sample falls into.
func CalibrateByHandSize(samples []models.BidSample, buckets []HandSizeBucket) []BucketCalibration {
	var out []BucketCalibration
	for _, b := range buckets {
		var in []models.BidSample
		for _, s := range samples {
			if b.Contains(s.HandSize) {
				in = append(in, s)
			}
		}
		if len(in) == 0 {
			continue
		}
		out = append(out, BucketCalibration{Bucket: b, Rows: Calibrate(in)})
	}
	return out
}
