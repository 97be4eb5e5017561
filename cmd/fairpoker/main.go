package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Config  string           `short:"c" help:"Path to HCL protocol config file" type:"path"`

	Play   PlayCmd   `cmd:"" help:"Play a demonstration hand and export the game record"`
	Verify VerifyCmd `cmd:"" help:"Verify exported game records"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairpoker"),
		kong.Description("Provably-fair commit-reveal Texas hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
