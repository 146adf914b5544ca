package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazydrawer/internal/app"
	"github.com/chmouel/lazydrawer/internal/config"
	"github.com/chmouel/lazydrawer/internal/log"
	urfavecli "github.com/urfave/cli/v3"
)

// runTUI is the default action that launches the TUI.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	cfg, err := prepareConfig(cmd)
	if err != nil {
		_ = log.Close()
		return err
	}
	setupDebugLog(cfg)

	model := app.NewModel(cfg)
	if w, err := config.Watch(cfg.Path, log.Named("config")); err != nil {
		log.Printf("not watching %s: %v", cfg.Path, err)
	} else {
		model.WatchConfig(w)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	model.Close()
	if err != nil {
		_ = log.Close()
		return fmt.Errorf("error running app: %w", err)
	}

	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
	return nil
}

// prepareConfig loads the configuration and applies command-line flags on
// top of it. The flags are turned into ld.key=value overrides ahead of the
// --config ones, so --config has the highest precedence and a reload of the
// config file re-applies both.
func prepareConfig(cmd *urfavecli.Command) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	overrides, err := flagOverrides(cmd)
	if err != nil {
		return nil, err
	}
	overrides = append(overrides, cmd.StringSlice("config")...)
	if len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}
	return cfg, nil
}

// flagOverrides validates the dedicated flags and returns them as
// ld.key=value overrides.
func flagOverrides(cmd *urfavecli.Command) ([]string, error) {
	var out []string
	if name := cmd.String("theme"); name != "" {
		normalized := config.NormalizeThemeName(name)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", name)
		}
		out = append(out, "ld.theme="+normalized)
	}
	if s := cmd.String("position"); s != "" {
		pos, ok := config.ParsePosition(s)
		if !ok {
			return nil, fmt.Errorf("unknown position %q, expected left or right", s)
		}
		out = append(out, "ld.position="+pos.String())
	}
	if s := cmd.String("type"); s != "" {
		typ, ok := config.ParseType(s)
		if !ok {
			return nil, fmt.Errorf("unknown drawer type %q", s)
		}
		out = append(out, "ld.type="+typ.String())
	}
	if cmd.IsSet("open") {
		out = append(out, fmt.Sprintf("ld.open=%t", cmd.Bool("open")))
	}
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		out = append(out, "ld.debug_log="+debugLog)
	}
	return out, nil
}

// setupDebugLog opens the configured debug log, or drops what was
// buffered when there is none.
func setupDebugLog(cfg *config.AppConfig) {
	if cfg.DebugLog == "" {
		_ = log.SetFile("")
		return
	}
	path := cfg.DebugLog
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	cfg.DebugLog = path
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
