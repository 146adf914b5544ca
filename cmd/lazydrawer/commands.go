package main

import (
	"context"
	"fmt"

	"github.com/chmouel/lazydrawer/internal/config"
	"github.com/chmouel/lazydrawer/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			w := cmd.Root().Writer
			for _, name := range theme.AvailableThemes() {
				kind := "dark"
				if theme.IsLight(name) {
					kind = "light"
				}
				if _, err := fmt.Fprintf(w, "%-18s %s\n", name, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func configKeysCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "config-keys",
		Usage: "List keys accepted by --config",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			w := cmd.Root().Writer
			for _, key := range config.KnownKeys() {
				if _, err := fmt.Fprintf(w, "ld.%s=\n", key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
