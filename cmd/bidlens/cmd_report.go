package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spboyer/bidlens/internal/analysis"
	"github.com/spboyer/bidlens/internal/dataset"
	"github.com/spboyer/bidlens/internal/extract"
	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/models"
	"github.com/spboyer/bidlens/internal/projectconfig"
	"github.com/spboyer/bidlens/internal/reporting"
	"github.com/spboyer/bidlens/internal/reporting/charts"
)

var (
	reportFormat string
	reportExport string
	reportChart  string
	reportPick   bool
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [results.jsonl | directory]",
		Short: "Print the bid accuracy report for a results log",
		Long: `Analyze every game in a results log and print the bid accuracy report.

The argument may be a .jsonl or .jsonl.gz file, or a directory; for a directory
the newest log inside it is used. Without an argument the configured results
directory (default simulation-results/) is searched.

A flat CSV of every bid sample is written when --export is given, when
export.enabled is set in .bidlens.yaml, or when the configured environment
variable (default SIM_EXPORT) is "1". Export failures are reported on stderr
and do not affect the report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: reportCommandE,
	}

	cmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Output format: text, markdown, html (default from config, else text)")
	cmd.Flags().StringVar(&reportExport, "export", "", "Write bid samples as CSV to this path")
	cmd.Flags().StringVar(&reportChart, "chart", "", "Save error histogram chart (.html, .png, .svg or .pdf)")
	cmd.Flags().BoolVar(&reportPick, "pick", false, "Choose among the logs in the results directory interactively")

	return cmd
}

func reportCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format, err := outputFormat(reportFormat, cfg)
	if err != nil {
		return err
	}

	path, err := resolveInput(cmd, args, cfg.ResultsDir(), reportPick)
	if err != nil {
		return err
	}
	games, err := loadGames(cmd, path, loader.SlogSink{})
	if err != nil {
		return err
	}

	samples := extract.Extract(games)
	slog.Debug("extracted samples", "bids", len(samples.Bids), "games", len(samples.Games))
	report := analysis.Build(games, samples.Bids, samples.Games, cfg.AnalysisSettings())
	doc := reporting.BuildDocument(report, path)

	if target, trigger := exportTarget(cfg, path); target != "" {
		writeExport(cmd, doc, target, trigger, samples.Bids)
	}

	if reportChart != "" {
		if err := charts.Save(reportChart, report); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: chart not saved: %v\n", err)
		} else {
			slog.Debug("chart saved", "path", reportChart)
		}
	}

	return reporting.Render(cmd.OutOrStdout(), doc, format)
}

// outputFormat prefers the flag over the configured default.
func outputFormat(flag string, cfg *projectconfig.ProjectConfig) (reporting.Format, error) {
	if flag == "" {
		flag = cfg.Report.Format
	}
	return reporting.ParseFormat(flag)
}

// exportTarget returns where to export and what enabled it. An empty
// target means no export.
func exportTarget(cfg *projectconfig.ProjectConfig, input string) (target, trigger string) {
	if reportExport != "" {
		return reportExport, ""
	}
	if !cfg.ExportRequested(os.Getenv) {
		return "", ""
	}
	if cfg.Export.Enabled != nil && *cfg.Export.Enabled {
		trigger = "export.enabled in " + projectconfig.FileName
	} else {
		trigger = cfg.Export.Env + "=1"
	}
	return dataset.ExportPath(input), trigger
}

func writeExport(cmd *cobra.Command, doc *reporting.Document, target, trigger string, bids []models.BidSample) {
	if err := dataset.WriteBidSamplesFile(target, bids); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: Failed to write export file: %v\n", err)
		return
	}
	reporting.AppendExport(doc, target, len(bids), trigger)
}
