package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	assets "github.com/Lcx29/simple-financial-instruments"
	"github.com/Lcx29/simple-financial-instruments/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio's composition" }
func (*summaryCmd) Usage() string {
	return `sfi summary

  Prints how many assets the portfolio holds, broken down by asset type.
  No currency conversion is involved.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	// a read-only projection, no rate table needed
	svc := assets.NewService(repo, nil, assets.DefaultReportingCurrency, log.Logger)
	summary, err := svc.Summary()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
