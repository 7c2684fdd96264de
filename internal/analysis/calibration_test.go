package analysis

import (
	"testing"

	"github.com/spboyer/bidlens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrate(t *testing.T) {
	samples := []models.BidSample{
		sample("a", 2, 3),
		sample("a", 0, 0),
		sample("a", 2, 1),
		sample("a", 2, 2),
		sample("a", 0, 1),
	}
	rows := Calibrate(samples)
	require.Len(t, rows, 2)

	assert.Equal(t, 0, rows[0].Bid)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 0.5, rows[0].AvgActual, 1e-9)
	assert.InDelta(t, 0.5, rows[0].MeanError, 1e-9)

	assert.Equal(t, 2, rows[1].Bid)
	assert.Equal(t, 3, rows[1].Count)
	assert.InDelta(t, 2.0, rows[1].AvgActual, 1e-9)
	assert.InDelta(t, 0.0, rows[1].MeanError, 1e-9)
}

func TestCalibrate_RowCountsSumToGroupSize(t *testing.T) {
	var samples []models.BidSample
	for i := range 37 {
		samples = append(samples, sample("a", i%5, (i*3)%7))
	}
	total := 0
	for _, r := range Calibrate(samples) {
		total += r.Count
	}
	assert.Equal(t, len(samples), total)
}

func TestCalibrateByHandSize_SkipsEmptyBuckets(t *testing.T) {
	samples := []models.BidSample{
		withHandSize(sample("a", 1, 1), 3),
		withHandSize(sample("a", 2, 4), 12),
		withHandSize(sample("a", 0, 0), 1),
	}
	tables := CalibrateByHandSize(samples, DefaultHandSizeBuckets())
	require.Len(t, tables, 2)
	assert.Equal(t, "2-5", tables[0].Bucket.Label)
	assert.Equal(t, "10-13", tables[1].Bucket.Label)
	assert.Equal(t, 1, tables[1].Rows[0].Count)
}
