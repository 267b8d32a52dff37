package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to config file" type:"path"`
	Debug   bool             `help:"Enable debug logging"`

	New    NewCmd    `cmd:"" help:"Record a new hand"`
	Edit   EditCmd   `cmd:"" help:"Edit an existing hand"`
	List   ListCmd   `cmd:"" help:"List recorded hands"`
	Show   ShowCmd   `cmd:"" help:"Print a hand as share text"`
	Export ExportCmd `cmd:"" help:"Copy a hand's share text to the clipboard"`
	Done   DoneCmd   `cmd:"" help:"Mark a hand reviewed"`
	Delete DeleteCmd `cmd:"" help:"Delete a hand"`
	Player PlayerCmd `cmd:"" help:"Manage the player directory"`
	Data   DataCmd   `cmd:"" help:"Bulk export and import of all data"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handnotes"),
		kong.Description("Manual note-taking for no-limit hold'em hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := openApp(cli.Config, cli.Debug)
	ctx.FatalIfErrorf(err)
	defer app.Close()

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
