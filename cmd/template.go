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

type templateCmd struct{}

func (*templateCmd) Name() string { return "template" }
func (*templateCmd) Synopsis() string {
	return "roll the portfolio forward and write next month's starting configuration"
}
func (*templateCmd) Usage() string {
	return `sfi template

  Rolls every asset forward (credit cards carry over unchanged, everything
  else starts next month at zero), writes the template beside the asset file
  and prints its statistics.
`
}

func (*templateCmd) SetFlags(f *flag.FlagSet) {}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

// runTemplate generates the next-month template and prints its statistics.
// Template generation needs no rate table, only the repository.
func runTemplate(repo *assets.YAMLRepository) error {
	svc := assets.NewService(repo, nil, assets.DefaultReportingCurrency, log.Logger)
	data, err := svc.GenerateNextMonthTemplate()
	if err != nil {
		return err
	}
	printMarkdown(renderer.TemplateMarkdown(data))
	fmt.Printf("Template written to %s\n", repo.NextMonthPath())
	return nil
}
