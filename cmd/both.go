package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type bothCmd struct {
	format string
}

func (*bothCmd) Name() string { return "both" }
func (*bothCmd) Synopsis() string {
	return "run the profit/loss analysis and generate the next month template"
}
func (*bothCmd) Usage() string {
	return `sfi both [-format <text|dict|both>]

  Performs the full monthly close: prints the profit/loss report, then rolls
  the portfolio forward into next month's starting configuration.
`
}

func (c *bothCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "Output format for the report: text, dict or both.")
}

func (c *bothCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := newService()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runAnalyze(svc, c.format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := runTemplate(repo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
