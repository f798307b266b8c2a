package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Replay  ReplayCmd        `cmd:"" help:"Replay a transcript and print the outcome"`
	Check   CheckCmd         `cmd:"" help:"Validate transcript files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handscribe"),
		kong.Description("Transcribe, validate and replay no-limit hold'em hands"),
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

// newLogger builds the command logger on stderr, keeping stdout clean
// for rendered hands and JSON output.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
