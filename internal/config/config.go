package config

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCount      = 120
	DefaultGravity    = 7.0
	DefaultFriction   = 0.9975
	DefaultWallBounce = 0.95
	DefaultMinRadius  = 0.35
	DefaultMaxRadius  = 0.9
	DefaultMaxSpeed   = 25.0
	DefaultAttract    = 30.0
	DefaultMaxDt      = 1.0 / 30.0
)

// DefaultColors is the fallback palette when the configured one is empty
// or unparsable.
var DefaultColors = []string{"#ff5050", "#ffb650", "#f9f871", "#50d8a4", "#4f9df7", "#b367e0"}

// Config is the immutable per-instance configuration of one ball pit.
// Invalid values are normalized defensively rather than rejected: the
// widget is decorative and must never fail the host over a bad knob.
type Config struct {
	Count        int      `yaml:"count"`
	Gravity      float64  `yaml:"gravity"`
	Friction     float64  `yaml:"friction"`
	WallBounce   float64  `yaml:"wall_bounce"`
	FollowCursor bool     `yaml:"follow_cursor"`
	Colors       []string `yaml:"colors"`

	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Attract   float64 `yaml:"attract"`
	MaxDt     float64 `yaml:"max_dt"`
	Seed      int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:        DefaultCount,
		Gravity:      DefaultGravity,
		Friction:     DefaultFriction,
		WallBounce:   DefaultWallBounce,
		FollowCursor: true,
		Colors:       append([]string(nil), DefaultColors...),
		MinRadius:    DefaultMinRadius,
		MaxRadius:    DefaultMaxRadius,
		MaxSpeed:     DefaultMaxSpeed,
		Attract:      DefaultAttract,
		MaxDt:        DefaultMaxDt,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps every field into its legal range and substitutes safe
// defaults for unusable values. It never fails.
func (c *Config) Normalize() {
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	if c.Friction <= 0 || c.Friction > 1 {
		c.Friction = DefaultFriction
	}
	if c.WallBounce < 0 {
		c.WallBounce = 0
	} else if c.WallBounce > 1 {
		c.WallBounce = 1
	}
	if c.MinRadius <= 0 {
		c.MinRadius = DefaultMinRadius
	}
	if c.MaxRadius < c.MinRadius {
		c.MaxRadius = c.MinRadius
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = DefaultMaxSpeed
	}
	if c.Attract < 0 {
		c.Attract = 0
	}
	if c.MaxDt <= 0 {
		c.MaxDt = DefaultMaxDt
	}
	if len(c.Palette()) == 0 {
		c.Colors = append([]string(nil), DefaultColors...)
	}
}

// Palette parses the configured colors, skipping entries that are not
// valid hex colors. The result may be empty; Normalize guarantees a
// non-empty palette on a normalized config.
func (c *Config) Palette() []colorful.Color {
	out := make([]colorful.Color, 0, len(c.Colors))
	for _, s := range c.Colors {
		col, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}
