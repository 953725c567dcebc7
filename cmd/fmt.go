package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the asset file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `sfi fmt

  Reads the asset configuration, validates every record, and writes it back
  with asset types in canonical order. Records that fail validation are
  dropped with a warning, exactly as they would be ignored by analysis.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	portfolio, err := repo.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := repo.SavePortfolio(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s (%d assets)\n", repo.Path(), portfolio.Size())
	return subcommands.ExitSuccess
}
