package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	assets "github.com/Lcx29/simple-financial-instruments"
	"github.com/Lcx29/simple-financial-instruments/renderer"
	"github.com/google/subcommands"
)

type analyzeCmd struct {
	format string
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "analyze the portfolio's monthly profit/loss in the reporting currency"
}
func (*analyzeCmd) Usage() string {
	return `sfi analyze [-format <text|dict|both>]

  Loads the asset configuration, converts every asset's monthly profit/loss
  to the reporting currency and prints the aggregated report.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "Output format: text, dict or both.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := newService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runAnalyze(svc, c.format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runAnalyze performs the analysis and prints it in the requested format.
// It is shared with the "both" subcommand.
func runAnalyze(svc *assets.Service, format string) error {
	switch format {
	case "text", "dict", "both":
	default:
		return fmt.Errorf("unknown output format %q (want text, dict or both)", format)
	}

	report, err := svc.AnalyzeProfitLoss()
	if err != nil {
		return err
	}

	if format == "text" || format == "both" {
		printMarkdown(renderer.ReportMarkdown(report))
	}
	if format == "dict" || format == "both" {
		out, err := json.MarshalIndent(report.Dict(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}
