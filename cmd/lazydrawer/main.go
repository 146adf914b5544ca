// Package main is the entry point for the lazydrawer application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/lazydrawer/internal/buildinfo"
	urfavecli "github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *urfavecli.Command {
	urfavecli.VersionPrinter = func(cmd *urfavecli.Command) {
		_, _ = fmt.Fprintln(cmd.Root().Writer, buildinfo.String())
	}

	return &urfavecli.Command{
		Name:                  "lazydrawer",
		Usage:                 "A terminal demo of a draggable side drawer",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*urfavecli.Command{
			themesCommand(),
			configKeysCommand(),
		},
		Action: runTUI,
	}
}
