package loader

//go:generate go tool mockgen -source=sink.go -destination=sink_mock_test.go -package=loader

import "log/slog"

// WarningSink receives the non-fatal problems found while reading a log.
type WarningSink interface {
	// LineSkipped is called for a line that could not be parsed.
	LineSkipped(line int, err error)

	// RecordSkipped is called for a parsed record that failed validation.
	RecordSkipped(gameID string, line int, err error)

	// RoundSkipped is called for a round that could not be decoded. The rest
	// of the game is kept.
	RoundSkipped(gameID string, round int, err error)
}

// SlogSink reports warnings through a slog.Logger. A nil Logger uses slog.Default().
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s SlogSink) LineSkipped(line int, err error) {
	s.logger().Warn("skipping unparseable line", "line", line, "error", err)
}

func (s SlogSink) RecordSkipped(gameID string, line int, err error) {
	s.logger().Warn("skipping invalid game record", "game_id", gameID, "line", line, "error", err)
}

func (s SlogSink) RoundSkipped(gameID string, round int, err error) {
	s.logger().Warn("skipping undecodable round", "game_id", gameID, "round_index", round, "error", err)
}

// Counter wraps a sink and counts what passes through it.
type Counter struct {
	Next           WarningSink
	LinesSkipped   int
	RecordsSkipped int
	RoundsSkipped  int
}

func (c *Counter) LineSkipped(line int, err error) {
	c.LinesSkipped++
	if c.Next != nil {
		c.Next.LineSkipped(line, err)
	}
}

func (c *Counter) RecordSkipped(gameID string, line int, err error) {
	c.RecordsSkipped++
	if c.Next != nil {
		c.Next.RecordSkipped(gameID, line, err)
	}
}

func (c *Counter) RoundSkipped(gameID string, round int, err error) {
	c.RoundsSkipped++
	if c.Next != nil {
		c.Next.RoundSkipped(gameID, round, err)
	}
}
