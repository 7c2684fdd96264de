package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/reporting"
	"github.com/spboyer/bidlens/internal/validation"
)

var (
	validateJUnit string
	validatePick  bool
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [results.jsonl | directory]",
		Short: "Check a results log without analyzing it",
		Long: `Check every line of a results log against the game record schema and list
the records analysis would skip.

Exits with status 1 when any line is unparseable or any record is rejected,
and 2 when the log cannot be read at all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: validateCommandE,
	}

	cmd.Flags().StringVar(&validateJUnit, "junit", "", "Write results as JUnit XML to this path")
	cmd.Flags().BoolVar(&validatePick, "pick", false, "Choose among the logs in the results directory interactively")

	return cmd
}

// parseErrorSink keeps unparseable lines for the summary and forwards
// every warning.
type parseErrorSink struct {
	loader.WarningSink
	parseErrs []*loader.ParseError
}

func (s *parseErrorSink) LineSkipped(line int, err error) {
	var pe *loader.ParseError
	if errors.As(err, &pe) {
		s.parseErrs = append(s.parseErrs, pe)
	} else {
		s.parseErrs = append(s.parseErrs, &loader.ParseError{Line: line, Err: err})
	}
	s.WarningSink.LineSkipped(line, err)
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	path, err := resolveInput(cmd, args, cfg.ResultsDir(), validatePick)
	if err != nil {
		return err
	}

	sink := &parseErrorSink{WarningSink: loader.SlogSink{}}
	records, err := loader.LoadFile(path, sink)
	if err != nil {
		return err
	}
	res := validation.ValidateAll(records, sink)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %s\n", path)
	fmt.Fprintf(out, "  Valid games:        %d\n", len(res.Games))
	fmt.Fprintf(out, "  Rejected records:   %d\n", len(res.Rejected))
	fmt.Fprintf(out, "  Unparseable lines:  %d\n", len(sink.parseErrs))

	for _, pe := range sink.parseErrs {
		fmt.Fprintf(out, "\n✗ %v\n", pe)
	}
	for _, rej := range res.Rejected {
		fmt.Fprintf(out, "\n✗ game %s (line %d)\n", rej.GameID, rej.Line)
		for _, p := range rej.Problems {
			fmt.Fprintf(out, "    - %s\n", p)
		}
	}

	if validateJUnit != "" {
		suites := reporting.ConvertValidationToJUnit(path, res, sink.parseErrs, time.Now())
		if err := reporting.WriteJUnitXML(suites, validateJUnit); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
		fmt.Fprintf(out, "\nJUnit report written to %s\n", validateJUnit)
	}

	if len(res.Rejected) > 0 || len(sink.parseErrs) > 0 {
		return &RejectedRecordsError{Rejected: len(res.Rejected), Unparseable: len(sink.parseErrs)}
	}
	fmt.Fprintln(out, "\n✓ All records valid")
	return nil
}
