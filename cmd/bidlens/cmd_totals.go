package main

import (
	"github.com/spf13/cobra"

	"github.com/spboyer/bidlens/internal/analysis"
	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/reporting"
)

var (
	totalsFormat string
	totalsPick   bool
)

func newTotalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals [results.jsonl | directory]",
		Short: "Compare summed bids with hand size",
		Long: `Report how the sum of all bids in a round compares with the number of tricks
available, grouped by hand size, together with the distribution of individual
bids. Only rounds where every seat recorded a bid are counted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: totalsCommandE,
	}

	cmd.Flags().StringVarP(&totalsFormat, "format", "f", "", "Output format: text, markdown, html (default from config, else text)")
	cmd.Flags().BoolVar(&totalsPick, "pick", false, "Choose among the logs in the results directory interactively")

	return cmd
}

func totalsCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(totalsFormat, cfg)
	if err != nil {
		return err
	}

	path, err := resolveInput(cmd, args, cfg.ResultsDir(), totalsPick)
	if err != nil {
		return err
	}
	games, err := loadGames(cmd, path, loader.SlogSink{})
	if err != nil {
		return err
	}

	totals := analysis.ComputeBidTotals(games, cfg.AnalysisSettings().NumPlayers)
	doc := reporting.BuildTotalsDocument(totals, len(games), path)
	return reporting.Render(cmd.OutOrStdout(), doc, format)
}
