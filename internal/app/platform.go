package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/chmouel/lazydrawer/internal/log"
)

// hostPlatform provides the drawer's platform services inside the TUI.
// The status bar is the bottom row of the scene and the keyboard is the
// search input.
type hostPlatform struct {
	next   drawer.InteractionHandle
	active map[drawer.InteractionHandle]struct{}

	statusHidden bool
	statusAnim   drawer.StatusBarAnimation

	search *textinput.Model
	logf   log.Logf
}

func newHostPlatform(search *textinput.Model, logf log.Logf) *hostPlatform {
	return &hostPlatform{
		active: make(map[drawer.InteractionHandle]struct{}),
		search: search,
		logf:   logf,
	}
}

// BeginInteraction implements drawer.Platform.
func (p *hostPlatform) BeginInteraction() drawer.InteractionHandle {
	p.next++
	p.active[p.next] = struct{}{}
	return p.next
}

// EndInteraction implements drawer.Platform.
func (p *hostPlatform) EndInteraction(h drawer.InteractionHandle) {
	delete(p.active, h)
}

// SetStatusBarHidden implements drawer.Platform.
func (p *hostPlatform) SetStatusBarHidden(hidden bool, anim drawer.StatusBarAnimation) {
	if p.statusHidden != hidden {
		p.logf("status bar hidden=%t", hidden)
	}
	p.statusHidden = hidden
	p.statusAnim = anim
}

// DismissKeyboard implements drawer.Platform.
func (p *hostPlatform) DismissKeyboard() {
	if p.search != nil && p.search.Focused() {
		p.search.Blur()
	}
}

// Busy reports whether an interaction lock is held.
func (p *hostPlatform) Busy() bool {
	return len(p.active) > 0
}
