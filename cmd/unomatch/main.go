package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a hot-seat match in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Run batches of random-policy matches"`
	Deal     DealCmd          `cmd:"" help:"Deal a hand and print it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("unomatch"),
		kong.Description("UNO match engine: hot-seat play and bulk simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// setupLogger configures console logging
func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
