package config

import "sort"

var presets = map[string]*Config{
	"classic": {
		Count: 120, Gravity: 7.0, Friction: 0.9975, WallBounce: 0.95,
		FollowCursor: true,
		Colors:       []string{"#ff5050", "#ffb650", "#f9f871", "#50d8a4", "#4f9df7", "#b367e0"},
		MinRadius:    0.35, MaxRadius: 0.9,
	},
	"zerog": {
		Count: 160, Gravity: 0, Friction: 1.0, WallBounce: 1.0,
		FollowCursor: true,
		Colors:       []string{"#9be7ff", "#64b5f6", "#2286c3", "#e3f2fd"},
		MinRadius:    0.3, MaxRadius: 0.7,
	},
	"rubber": {
		Count: 60, Gravity: 12.0, Friction: 0.999, WallBounce: 0.88,
		FollowCursor: false,
		Colors:       []string{"#222222", "#eeeeee", "#e53935"},
		MinRadius:    0.6, MaxRadius: 1.2,
	},
	"syrup": {
		Count: 200, Gravity: 4.0, Friction: 0.96, WallBounce: 0.4,
		FollowCursor: true,
		Colors:       []string{"#ffd54f", "#ffb300", "#ff8f00", "#6d4c41"},
		MinRadius:    0.25, MaxRadius: 0.55,
	},
	"blizzard": {
		Count: 500, Gravity: 1.5, Friction: 0.995, WallBounce: 0.7,
		FollowCursor: true,
		Colors:       []string{"#ffffff", "#e1f5fe", "#b3e5fc"},
		MinRadius:    0.12, MaxRadius: 0.3,
	},
}

// Preset returns a normalized copy of the named preset, or nil when the
// name is unknown.
func Preset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Count = p.Count
	cfg.Gravity = p.Gravity
	cfg.Friction = p.Friction
	cfg.WallBounce = p.WallBounce
	cfg.FollowCursor = p.FollowCursor
	cfg.Colors = append([]string(nil), p.Colors...)
	cfg.MinRadius = p.MinRadius
	cfg.MaxRadius = p.MaxRadius
	cfg.Normalize()
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
