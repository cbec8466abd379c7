package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build.
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Strategy StrategyCmd      `cmd:"" default:"1" help:"Print the basic strategy chart and expected value"`
	Edge     EdgeCmd          `cmd:"" help:"Print the house edge and its breakdown"`
	Lookup   LookupCmd        `cmd:"" help:"Show the decision and EVs for one hand against one upcard"`
	Export   ExportCmd        `cmd:"" help:"Write every solved table as CSV"`
	Compare  CompareCmd       `cmd:"" help:"Solve the S17 and H17 games side by side"`
	Browse   BrowseCmd        `cmd:"" help:"Browse the solved tables interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack-ev"),
		kong.Description("Exact expected values and basic strategy for infinite-shoe blackjack"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
