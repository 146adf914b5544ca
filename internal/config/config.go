// Package config loads the lazydrawer configuration from YAML.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chmouel/lazydrawer/internal/drawer"
	"github.com/chmouel/lazydrawer/internal/theme"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Section is one entry of the drawer menu and the text shown in the scene
// when it is selected.
type Section struct {
	Title string
	Body  string
}

// AppConfig defines the global lazydrawer configuration options.
type AppConfig struct {
	Theme    string
	DebugLog string

	Open                   bool
	Position               drawer.Position
	Type                   drawer.Type
	Width                  drawer.WidthSpec
	EdgeHitWidth           float64
	SwipeDistanceThreshold float64
	SwipeVelocityThreshold float64
	GestureEnabled         bool
	SwipeEnabled           bool
	KeyboardDismissMode    drawer.KeyboardDismissMode
	HideStatusBarOnOpen    bool
	StatusBarAnimation     drawer.StatusBarAnimation

	PixelsPerCell   float64 // Pixels per terminal column; thresholds are in pixels
	SpringFrequency float64
	SpringDamping   float64
	FPS             int

	Sections []Section

	// Path is the file the config was loaded from, or would be.
	Path string `yaml:"-"`
	// Overrides are the CLI overrides, re-applied on reload.
	Overrides []string `yaml:"-"`
}

// stdinIsTerminal decides the platform default for swipes: without a
// terminal there is no mouse to drag with.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	spring := drawer.DefaultSpring()
	return &AppConfig{
		Theme:                  theme.DraculaName,
		Position:               drawer.PositionLeft,
		Type:                   drawer.TypeFront,
		EdgeHitWidth:           drawer.DefaultEdgeHitWidth,
		SwipeDistanceThreshold: drawer.DefaultSwipeDistanceThreshold,
		SwipeVelocityThreshold: drawer.DefaultSwipeVelocityThreshold,
		GestureEnabled:         true,
		SwipeEnabled:           stdinIsTerminal(),
		KeyboardDismissMode:    drawer.KeyboardDismissOnDrag,
		PixelsPerCell:          8,
		SpringFrequency:        spring.Frequency,
		SpringDamping:          spring.Damping,
		FPS:                    spring.FPS,
		Sections:               DefaultSections(),
	}
}

// DefaultSections returns the built-in drawer menu.
func DefaultSections() []Section {
	return []Section{
		{Title: "Inbox", Body: "Nothing new. Drag from the screen edge or press m to open the menu."},
		{Title: "Starred", Body: "Starred items show up here."},
		{Title: "Archive", Body: "Archived items are kept for later."},
		{Title: "Settings", Body: "Edit the config file while the app runs: changes are picked up live."},
	}
}

// DrawerOptions converts the configuration to drawer options for a
// viewport measured in pixels.
func (c *AppConfig) DrawerOptions(viewportWidth, viewportHeight float64) drawer.Options {
	return drawer.Options{
		Position:               c.Position,
		Type:                   c.Type,
		Width:                  c.Width,
		ViewportWidth:          viewportWidth,
		ViewportHeight:         viewportHeight,
		SwipeDistanceThreshold: c.SwipeDistanceThreshold,
		SwipeVelocityThreshold: c.SwipeVelocityThreshold,
		EdgeHitWidth:           c.EdgeHitWidth,
		GestureEnabled:         c.GestureEnabled,
		SwipeEnabled:           c.SwipeEnabled,
		KeyboardDismissMode:    c.KeyboardDismissMode,
		HideStatusBarOnOpen:    c.HideStatusBarOnOpen,
		StatusBarAnimation:     c.StatusBarAnimation,
		Spring: drawer.SpringConfig{
			FPS:       c.FPS,
			Frequency: c.SpringFrequency,
			Damping:   c.SpringDamping,
		},
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		text := strings.TrimSpace(v)
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

func coerceFloat(value any, defaultVal float64) float64 {
	if value == nil {
		return defaultVal
	}

	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return defaultVal
		}
		f = parsed
	default:
		return defaultVal
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultVal
	}
	return f
}

// ParseWidth parses "300", 300 or "80%". Anything else is unset, which
// the drawer resolves to its default proportional width.
func ParseWidth(value any) drawer.WidthSpec {
	switch v := value.(type) {
	case int:
		return drawer.Pixels(float64(v))
	case float64:
		return drawer.Pixels(v)
	case string:
		text := strings.TrimSpace(v)
		if pct, ok := strings.CutSuffix(text, "%"); ok {
			p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
			if err != nil {
				return drawer.Percent(math.NaN())
			}
			return drawer.Percent(p)
		}
		if px, err := strconv.ParseFloat(text, 64); err == nil {
			return drawer.Pixels(px)
		}
	}
	return drawer.WidthSpec{}
}

// ParsePosition maps a config string to a drawer position.
func ParsePosition(s string) (drawer.Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return drawer.PositionLeft, true
	case "right":
		return drawer.PositionRight, true
	}
	return drawer.PositionLeft, false
}

// ParseType maps a config string to a drawer type.
func ParseType(s string) (drawer.Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front":
		return drawer.TypeFront, true
	case "back":
		return drawer.TypeBack, true
	case "slide":
		return drawer.TypeSlide, true
	case "permanent":
		return drawer.TypePermanent, true
	}
	return drawer.TypeFront, false
}

func parseSections(value any) []Section {
	list, ok := value.([]any)
	if !ok {
		return nil
	}

	var sections []Section
	for _, item := range list {
		switch v := item.(type) {
		case string:
			if title := strings.TrimSpace(v); title != "" {
				sections = append(sections, Section{Title: title})
			}
		case map[string]any:
			s := Section{}
			if title, ok := v["title"].(string); ok {
				s.Title = strings.TrimSpace(title)
			}
			if body, ok := v["body"].(string); ok {
				s.Body = strings.TrimSpace(body)
			}
			if s.Title != "" {
				sections = append(sections, s)
			}
		}
	}
	return sections
}

// applyMap sets the keys present in data, leaving the others untouched.
func (c *AppConfig) applyMap(data map[string]any) {
	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			c.Theme = normalized
		}
	}
	if debugLog, ok := data["debug_log"].(string); ok {
		if debugLog = strings.TrimSpace(debugLog); debugLog != "" {
			if expanded, err := ExpandPath(debugLog); err == nil {
				debugLog = expanded
			}
			c.DebugLog = debugLog
		}
	}
	if pos, ok := data["position"].(string); ok {
		if p, ok := ParsePosition(pos); ok {
			c.Position = p
		}
	}
	if typ, ok := data["type"].(string); ok {
		if t, ok := ParseType(typ); ok {
			c.Type = t
		}
	}
	if raw, ok := data["width"]; ok {
		c.Width = ParseWidth(raw)
	}
	if mode, ok := data["keyboard_dismiss_mode"].(string); ok {
		switch strings.ToLower(strings.TrimSpace(mode)) {
		case "none":
			c.KeyboardDismissMode = drawer.KeyboardDismissNone
		case "on-drag":
			c.KeyboardDismissMode = drawer.KeyboardDismissOnDrag
		}
	}
	if anim, ok := data["status_bar_animation"].(string); ok {
		switch strings.ToLower(strings.TrimSpace(anim)) {
		case "slide":
			c.StatusBarAnimation = drawer.StatusBarAnimationSlide
		case "fade":
			c.StatusBarAnimation = drawer.StatusBarAnimationFade
		case "none":
			c.StatusBarAnimation = drawer.StatusBarAnimationNone
		}
	}

	c.Open = coerceBool(data["open"], c.Open)
	c.GestureEnabled = coerceBool(data["gesture_enabled"], c.GestureEnabled)
	c.SwipeEnabled = coerceBool(data["swipe_enabled"], c.SwipeEnabled)
	c.HideStatusBarOnOpen = coerceBool(data["hide_status_bar_on_open"], c.HideStatusBarOnOpen)
	c.EdgeHitWidth = coerceFloat(data["edge_hit_width"], c.EdgeHitWidth)
	c.SwipeDistanceThreshold = coerceFloat(data["swipe_distance_threshold"], c.SwipeDistanceThreshold)
	c.SwipeVelocityThreshold = coerceFloat(data["swipe_velocity_threshold"], c.SwipeVelocityThreshold)
	c.PixelsPerCell = coerceFloat(data["pixels_per_cell"], c.PixelsPerCell)
	c.SpringFrequency = coerceFloat(data["spring_frequency"], c.SpringFrequency)
	c.SpringDamping = coerceFloat(data["spring_damping"], c.SpringDamping)
	c.FPS = coerceInt(data["fps"], c.FPS)

	if sections := parseSections(data["sections"]); len(sections) > 0 {
		c.Sections = sections
	}

	if c.PixelsPerCell <= 0 {
		c.PixelsPerCell = 1
	}
	if c.FPS <= 0 || c.FPS > 240 {
		c.FPS = drawer.DefaultSpring().FPS
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.applyMap(data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(getConfigDir(), "lazydrawer", "config.yaml")
}

// LoadConfig reads the application configuration from a YAML file. A
// missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	path := DefaultPath()
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("expanding config path: %w", err)
		}
		if path, err = filepath.Abs(expanded); err != nil {
			return DefaultConfig(), fmt.Errorf("resolving config path: %w", err)
		}
	}

	// #nosec G304 -- the path is chosen by the user
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.Path = path
		return cfg, nil
	}
	if err != nil {
		cfg := DefaultConfig()
		cfg.Path = path
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var yamlData map[string]any
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		cfg := DefaultConfig()
		cfg.Path = path
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := parseConfig(yamlData)
	cfg.Path = path
	return cfg, nil
}

// Reload loads the file c came from and re-applies its CLI overrides.
func (c *AppConfig) Reload() (*AppConfig, error) {
	next, err := LoadConfig(c.Path)
	if err != nil {
		return nil, err
	}
	if len(c.Overrides) > 0 {
		if err := next.ApplyCLIOverrides(c.Overrides); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
