package main

import (
	"strings"

	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// --version is provided by urfave/cli through Command.Version.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "theme",
			Usage: "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:    "position",
			Aliases: []string{"p"},
			Usage:   "Screen edge of the drawer: left or right",
		},
		&urfavecli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "Drawer type: " + strings.Join(drawerTypeNames, ", "),
		},
		&urfavecli.BoolFlag{
			Name:  "open",
			Usage: "Start with the drawer open",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=ld.key=value",
		},
	}
}

var drawerTypeNames = []string{"front", "back", "slide", "permanent"}
