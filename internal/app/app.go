// Package app is the Bubble Tea host of the drawer: a scene with a menu
// drawer that can be dragged in from the screen edge.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazydrawer/internal/config"
	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/chmouel/lazydrawer/internal/gesture"
	"github.com/chmouel/lazydrawer/internal/log"
	"github.com/chmouel/lazydrawer/internal/theme"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	menuZoneID = "menu"
)

var drawerTypes = []drawer.Type{drawer.TypeFront, drawer.TypeBack, drawer.TypeSlide, drawer.TypePermanent}

// Model is the main Bubble Tea model.
type Model struct {
	config   *config.AppConfig
	theme    *theme.Theme
	ctrl     *drawer.Controller
	platform *hostPlatform
	gestures *gesture.Recognizer
	watcher  *config.Watcher
	logf     log.Logf

	// Each layer is scanned on its own, so zone coordinates are relative
	// to the layer's left edge.
	sceneZones  *zone.Manager
	drawerZones *zone.Manager

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	search   textinput.Model

	width  int
	height int

	// frame is the last frame the controller committed.
	frame       drawer.Frame
	unsubscribe func()

	// open is the settled openness last reported through the mailbox.
	open          bool
	selected      int
	showHelp      bool
	statusMsg     string
	statusKind    statusKind
	pendingReload bool

	ticking bool
	tickGen uint64

	now      func() time.Time
	quitting bool
	closed   bool
}

// NewModel creates the host model for cfg.
func NewModel(cfg *config.AppConfig) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	search := textinput.New()
	search.Placeholder = "filter sections"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := &Model{
		config:      cfg,
		theme:       theme.GetTheme(cfg.Theme),
		gestures:    gesture.New(),
		logf:        log.Named("app"),
		sceneZones:  zone.New(),
		drawerZones: zone.New(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		viewport:    viewport.New(defaultWidth, defaultHeight-3),
		search:      search,
		width:       defaultWidth,
		height:      defaultHeight,
		open:        cfg.Open,
		now:         time.Now,
	}
	m.platform = newHostPlatform(&m.search, log.Named("platform"))
	m.ctrl = drawer.NewController(m.drawerConfig(), cfg.Open,
		drawer.WithPlatform(m.platform),
		drawer.WithLogf(log.Named("drawer")),
	)
	m.frame = m.ctrl.Frame()
	m.unsubscribe = m.ctrl.Subscribe(func(f drawer.Frame) { m.frame = f })
	if cfg.Type == drawer.TypePermanent {
		m.open = true
	}
	m.layout()
	return m
}

// WatchConfig reloads the configuration whenever w reports a change.
// Call before the program starts.
func (m *Model) WatchConfig(w *config.Watcher) {
	m.watcher = w
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSettle(m.ctrl.Mailbox()),
		waitForConfigChange(m.watcher),
		m.animate(),
	)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ctrl.Configure(m.drawerConfig())
		m.layout()
		return m, m.animate()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		return m, m.handleFrame(msg)

	case settleMsg:
		m.handleSettled(msg.events)
		return m, waitForSettle(m.ctrl.Mailbox())

	case configChangedMsg:
		return m, tea.Batch(m.reloadConfig(), waitForConfigChange(m.watcher))
	}

	var cmd tea.Cmd
	if m.search.Focused() {
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// Close tears down the drawer, the zone managers and the config watcher.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.unsubscribe()
	m.ctrl.Close()
	m.sceneZones.Close()
	m.drawerZones.Close()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.logf("closing config watcher: %v", err)
		}
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Close()
	return tea.Quit
}

func (m *Model) scale() float64 {
	if m.config.PixelsPerCell <= 0 {
		return 1
	}
	return m.config.PixelsPerCell
}

func (m *Model) drawerConfig() drawer.Config {
	s := m.scale()
	return drawer.Resolve(m.config.DrawerOptions(float64(m.width)*s, float64(m.height)*s))
}

func (m *Model) gestureGeometry() gesture.Geometry {
	return gesture.Geometry{
		Scale:  m.scale(),
		Config: m.ctrl.Config(),
		Open:   m.ctrl.Intent(),
	}
}

// animate starts a frame chain for the current animation unless one is
// already running for it.
func (m *Model) animate() tea.Cmd {
	if !m.ctrl.Animating() {
		return nil
	}
	gen := m.ctrl.Generation()
	if m.ticking && m.tickGen == gen {
		return nil
	}
	m.ticking, m.tickGen = true, gen
	return frameTick(gen, m.ctrl.Config().Spring.FPS)
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if !m.ticking || msg.gen != m.tickGen {
		return nil
	}
	if m.ctrl.Tick(msg.gen) {
		return frameTick(msg.gen, m.ctrl.Config().Spring.FPS)
	}
	m.ticking = false
	// A newer animation may have started while this chain ran.
	return m.animate()
}

func (m *Model) handleSettled(events []drawer.SettleEvent) {
	for _, ev := range events {
		m.open = ev.Open
		m.logf("drawer settled open=%t", ev.Open)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			m.clampSelection()
			return nil
		case tea.KeyCtrlC:
			return m.quit()
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampSelection()
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.RequestOpen(!m.ctrl.Intent())
	case key.Matches(msg, m.keys.Dismiss):
		if m.showHelp {
			m.showHelp = false
			m.updateContent()
		}
		m.ctrl.RequestOpen(false)
	case key.Matches(msg, m.keys.Open):
		m.ctrl.RequestOpen(true)
	case key.Matches(msg, m.keys.Close):
		m.ctrl.RequestOpen(false)
	case key.Matches(msg, m.keys.CycleType):
		m.config.Type = nextType(m.config.Type)
		m.setStatus(statusInfo, "type: "+m.config.Type.String())
		m.reconfigure()
	case key.Matches(msg, m.keys.Flip):
		if m.config.Position == drawer.PositionLeft {
			m.config.Position = drawer.PositionRight
		} else {
			m.config.Position = drawer.PositionLeft
		}
		m.setStatus(statusInfo, "position: "+m.config.Position.String())
		m.reconfigure()
	case key.Matches(msg, m.keys.Theme):
		m.config.Theme = theme.Next(m.config.Theme)
		m.theme = theme.GetTheme(m.config.Theme)
		m.setStatus(statusInfo, "theme: "+m.config.Theme)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Select):
		if m.menuVisible() {
			m.selectSection(m.selected)
		}
	case key.Matches(msg, m.keys.Search):
		return m.search.Focus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.updateContent()
		return nil
	}
	return m.animate()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.ScrollUp(3)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.ScrollDown(3)
		return nil
	}

	ev := m.gestures.Handle(msg, m.now(), m.gestureGeometry())
	if ev.Kind == gesture.KindStart || ev.Kind == gesture.KindEnd {
		m.logf("gesture %s x=%.1f translation=%.1f", ev.Kind, ev.Sample.TouchX, ev.Sample.TranslationX)
	}
	switch ev.Kind {
	case gesture.KindStart:
		m.ctrl.OnGestureStart(ev.TouchX)
		m.ctrl.OnGestureUpdate(ev.Sample)
	case gesture.KindUpdate:
		m.ctrl.OnGestureUpdate(ev.Sample)
	case gesture.KindEnd:
		m.ctrl.OnGestureEnd(ev.Sample)
		return tea.Batch(m.animate(), m.flushPendingReload())
	case gesture.KindTap:
		return m.handleTap(ev.CellX, ev.CellY)
	}
	return nil
}

// handleTap routes a click: entries of a visible drawer first, then the
// overlay, then the menu button of the scene.
func (m *Model) handleTap(x, y int) tea.Cmd {
	p := m.placement(m.frame)

	if p.drawerHit(x, m.width) {
		probe := tea.MouseMsg{X: x - p.drawerX, Y: y}
		for _, i := range m.visibleSections() {
			if m.drawerZones.Get(sectionZoneID(i)).InBounds(probe) {
				m.selectSection(i)
				return m.animate()
			}
		}
		return nil
	}
	if m.ctrl.TapOverlay() {
		return m.animate()
	}
	if m.sceneZones.Get(menuZoneID).InBounds(tea.MouseMsg{X: x - p.sceneX, Y: y}) {
		m.ctrl.RequestOpen(!m.ctrl.Intent())
		return m.animate()
	}
	return nil
}

func (m *Model) reconfigure() {
	m.ctrl.Configure(m.drawerConfig())
	if m.config.Type == drawer.TypePermanent {
		m.open = true
	}
	m.layout()
}

func (m *Model) reloadConfig() tea.Cmd {
	if m.platform.Busy() {
		m.pendingReload = true
		return nil
	}
	m.pendingReload = false

	next, err := m.config.Reload()
	if err != nil {
		m.setStatus(statusWarn, fmt.Sprintf("config: %v", err))
		m.logf("reloading config: %v", err)
		return nil
	}
	if next.DebugLog != m.config.DebugLog && next.DebugLog != "" {
		if err := log.SetFile(next.DebugLog); err != nil {
			m.logf("opening debug log %s: %v", next.DebugLog, err)
		}
	}
	m.config = next
	m.theme = theme.GetTheme(next.Theme)
	m.setStatus(statusOK, "config reloaded")
	m.reconfigure()
	m.clampSelection()
	return m.animate()
}

func (m *Model) flushPendingReload() tea.Cmd {
	if !m.pendingReload || m.platform.Busy() {
		return nil
	}
	return m.reloadConfig()
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
)

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind, m.statusMsg = kind, msg
}

func nextType(t drawer.Type) drawer.Type {
	for i, dt := range drawerTypes {
		if dt == t {
			return drawerTypes[(i+1)%len(drawerTypes)]
		}
	}
	return drawer.TypeFront
}

func sectionZoneID(i int) string {
	return fmt.Sprintf("section-%d", i)
}

// visibleSections returns the indexes of the sections matching the filter.
func (m *Model) visibleSections() []int {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	out := make([]int, 0, len(m.config.Sections))
	for i, s := range m.config.Sections {
		if query == "" || strings.Contains(strings.ToLower(s.Title), query) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Model) menuVisible() bool {
	return m.frame.Progress > 0
}

func (m *Model) moveSelection(delta int) {
	visible := m.visibleSections()
	if len(visible) == 0 || !m.menuVisible() {
		return
	}
	pos := 0
	for i, idx := range visible {
		if idx == m.selected {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(visible)) % len(visible)
	m.selected = visible[pos]
	m.updateContent()
}

func (m *Model) clampSelection() {
	visible := m.visibleSections()
	for _, idx := range visible {
		if idx == m.selected {
			return
		}
	}
	if len(visible) > 0 {
		m.selected = visible[0]
		m.updateContent()
	}
}

func (m *Model) selectSection(i int) {
	if i < 0 || i >= len(m.config.Sections) {
		return
	}
	m.selected = i
	m.updateContent()
	if m.config.Type != drawer.TypePermanent {
		m.ctrl.RequestOpen(false)
	}
}

// layout sizes the scene widgets to the current window.
func (m *Model) layout() {
	w := m.sceneWidth()
	m.viewport.Width = w
	m.viewport.Height = max(1, m.height-3)
	m.search.Width = max(1, w-4)
	m.updateContent()
}

func (m *Model) sceneWidth() int {
	if m.config.Type != drawer.TypePermanent {
		return m.width
	}
	return max(0, m.width-m.drawerCells())
}

func (m *Model) drawerCells() int {
	return min(m.width, toCells(m.ctrl.Config().Width, m.scale()))
}

func (m *Model) updateContent() {
	if m.showHelp {
		m.viewport.SetContent(m.help.FullHelpView(m.keys.FullHelp()))
		return
	}
	body := "Nothing here yet."
	if m.selected >= 0 && m.selected < len(m.config.Sections) {
		if s := m.config.Sections[m.selected]; s.Body != "" {
			body = s.Body
		}
	}
	m.viewport.SetContent(wordwrap.String(body, max(1, m.viewport.Width-2)))
	m.viewport.GotoTop()
}
