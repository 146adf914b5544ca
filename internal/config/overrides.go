package config

import (
	"fmt"
	"sort"
	"strings"
)

// knownKeys lists every key applyMap understands.
var knownKeys = map[string]struct{}{
	"theme": {}, "debug_log": {}, "open": {}, "position": {}, "type": {}, "width": {},
	"edge_hit_width": {}, "swipe_distance_threshold": {}, "swipe_velocity_threshold": {},
	"gesture_enabled": {}, "swipe_enabled": {}, "keyboard_dismiss_mode": {},
	"hide_status_bar_on_open": {}, "status_bar_animation": {}, "pixels_per_cell": {},
	"spring_frequency": {}, "spring_damping": {}, "fps": {},
}

// KnownKeys returns the keys accepted by --config overrides, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseCLIConfigOverrides parses --config=ld.key=value format.
// Returns a map suitable for applyMap(); values stay strings and are
// coerced like YAML scalars.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: ld.key=value (note: use = not space)", override)
		}

		key := strings.TrimPrefix(strings.TrimSpace(parts[0]), "ld.")
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		if _, ok := knownKeys[key]; !ok {
			return nil, fmt.Errorf("unknown config key %q", key)
		}
		// Last occurrence wins.
		result[key] = parts[1]
	}

	return result, nil
}

// ApplyCLIOverrides applies --config overrides on top of the loaded values
// and remembers them for reloads.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	c.applyMap(data)
	c.Overrides = append([]string(nil), overrides...)
	return nil
}
