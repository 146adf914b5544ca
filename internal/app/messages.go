package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazydrawer/internal/config"
	"github.com/chmouel/lazydrawer/internal/drawer"
)

// frameMsg advances the drawer animation identified by gen.
type frameMsg struct {
	gen uint64
}

// settleMsg carries the settle events drained from the drawer mailbox.
type settleMsg struct {
	events []drawer.SettleEvent
}

// configChangedMsg reports that the config file changed on disk.
type configChangedMsg struct{}

func frameTick(gen uint64, fps int) tea.Cmd {
	if fps <= 0 {
		fps = drawer.DefaultSpring().FPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func waitForSettle(mb *drawer.Mailbox) tea.Cmd {
	if mb == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-mb.Ready(); !ok {
			return nil
		}
		return settleMsg{events: mb.Drain()}
	}
}

func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return configChangedMsg{}
	}
}
