package dataset

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spboyer/bidlens/internal/models"
)

// ExportColumns is the header row of a bid sample export.
var ExportColumns = []string{
	"ai_name",
	"game_id",
	"round_index",
	"hand_size",
	"seat",
	"bid",
	"actual_tricks",
	"error",
	"abs_error",
	"trump",
	"highest_bidder",
	"chose_trump",
	"score_delta",
	"bonus_awarded",
}

// ExportError wraps any failure to write the export file.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ExportPath derives the default export file for a results log:
// results/run.jsonl and results/run.jsonl.gz both become results/run_export.csv.
func ExportPath(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), base+"_export.csv")
}

// WriteBidSamplesFile writes samples to path. Every failure is an *ExportError.
func WriteBidSamplesFile(path string, samples []models.BidSample) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ExportError{Path: path, Err: cerr}
		}
	}()

	if err := WriteBidSamples(f, samples); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// WriteBidSamples writes a header and one row per sample, ordered by game id,
// round index and seat. samples is not modified.
func WriteBidSamples(w io.Writer, samples []models.BidSample) error {
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, compareSamples)

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return err
	}
	for _, s := range sorted {
		if err := cw.Write(exportRow(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(s models.BidSample) []string {
	return []string{
		s.AIType,
		s.GameID,
		strconv.Itoa(s.RoundIndex),
		strconv.Itoa(s.HandSize),
		strconv.Itoa(s.Seat),
		strconv.Itoa(s.Bid),
		strconv.Itoa(s.ActualTricks),
		strconv.Itoa(s.Error),
		strconv.Itoa(s.AbsError),
		s.Trump,
		flag(s.HighestBidder.IsTrue()),
		flag(s.ChoseTrump.IsTrue()),
		strconv.Itoa(s.RoundScore),
		flag(s.Exact),
	}
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func compareSamples(a, b models.BidSample) int {
	if c := CompareGameIDs(a.GameID, b.GameID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.RoundIndex, b.RoundIndex); c != 0 {
		return c
	}
	return cmp.Compare(a.Seat, b.Seat)
}

// CompareGameIDs orders ids numerically when both are integers and
// lexically otherwise.
func CompareGameIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}

// IsExportError reports whether err came from writing an export.
func IsExportError(err error) bool {
	var ee *ExportError
	return errors.As(err, &ee)
}
