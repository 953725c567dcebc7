// Package cmd implements the CLI application to manage the monthly asset
// portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	assets "github.com/Lcx29/simple-financial-instruments"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&templateCmd{},
	&bothCmd{},
	&summaryCmd{},
	&fmtCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	assetFileEnv    = "SFI_ASSET_FILE"
	rateProviderEnv = "SFI_RATE_PROVIDER"
)

var (
	assetFileFlag    = flag.String("asset-file", "", "Path to the asset configuration file (YAML).\n If missing it will read the environment variable \""+assetFileEnv+"\"; defaults to assets.yaml")
	rateProviderFlag = flag.String("rate-provider", "", "Exchange rate provider: static or erapi.\n If missing it will read the environment variable \""+rateProviderEnv+"\"; defaults to static")
	ratesFlag        = flag.String("rates", defaultRateSpec, "Rate table for the static provider, as comma separated FROM->TO=rate entries")
	debugFlag        = flag.Bool("debug", false, "Enable debug logging")
)

// defaultRateSpec carries an indicative offline table for the static
// provider. Pairs are directed and deliberately non-reciprocal.
const defaultRateSpec = "USD->CNY=7.20,CNY->USD=0.1380,HKD->CNY=0.92,CNY->HKD=1.0850,USD->HKD=7.82,HKD->USD=0.1275"

// SetupLogging configures the global logger. It must run after flag.Parse.
func SetupLogging() {
	level := zerolog.InfoLevel
	if *debugFlag {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func assetFilePath() string {
	if *assetFileFlag != "" {
		return *assetFileFlag
	}
	if path := os.Getenv(assetFileEnv); path != "" {
		return path
	}
	return "assets.yaml"
}

func rateProviderName() string {
	if *rateProviderFlag != "" {
		return *rateProviderFlag
	}
	if name := os.Getenv(rateProviderEnv); name != "" {
		return name
	}
	return "static"
}

// openRepository is the central function to open the asset repository.
func openRepository() (*assets.YAMLRepository, error) {
	return assets.NewYAMLRepository(assetFilePath(), log.Logger)
}

// newRateTable builds the rate table from the selected provider.
func newRateTable() (*assets.RateTable, error) {
	var provider assets.RateProvider
	switch name := rateProviderName(); name {
	case "static":
		rates, err := assets.ParseRateSpec(*ratesFlag)
		if err != nil {
			return nil, err
		}
		provider = assets.NewStaticRateProvider(rates)
	case "erapi":
		p, err := assets.NewERAPIProvider("", log.Logger)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		return nil, fmt.Errorf("unknown rate provider %q (want static or erapi)", name)
	}
	return assets.NewRateTable(provider)
}

// newService wires the full analysis service: repository, rate table and
// reporting currency.
func newService() (*assets.Service, error) {
	repo, err := openRepository()
	if err != nil {
		return nil, err
	}
	rates, err := newRateTable()
	if err != nil {
		return nil, err
	}
	return assets.NewService(repo, rates, assets.DefaultReportingCurrency, log.Logger), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
