package main

import (
	"os"

	"github.com/alecthomas/kong"

	"roundtrip/cmd"
	"roundtrip/version"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	kong.Parse(&cli,
		kong.Name("run-roundtrip"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Exit code is the outcome: 0 round-trip held, 1 error, 2 skipped
	os.Exit(cli.Execute(os.Stderr))
}
