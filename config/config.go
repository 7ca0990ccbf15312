package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Validation failures, wrapped with the offending values
var (
	ErrInvalidArena    = errors.New("invalid arena")
	ErrInvalidTiming   = errors.New("invalid timing")
	ErrInvalidBoundary = errors.New("invalid boundary policy")
	ErrInvalidFood     = errors.New("invalid food settings")
)

// Arena size limits
const (
	MinArenaSize = 3
	MaxArenaSize = 500
)

// Duration decodes TOML strings such as "350ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete runtime configuration
type Config struct {
	// Seed for food placement and headings, 0 seeds from the clock
	Seed uint64 `toml:"seed"`

	Arena     ArenaConfig     `toml:"arena"`
	Snake     SnakeConfig     `toml:"snake"`
	Food      FoodConfig      `toml:"food"`
	Audio     AudioConfig     `toml:"audio"`
	Spectator SpectatorConfig `toml:"spectator"`

	// Keys maps an action name (up, down, left, right, pause, quit) to key names
	// Single characters are runes, longer names are tcell key names ("Up", "Esc")
	Keys map[string][]string `toml:"keys"`
}

type ArenaConfig struct {
	Width    int32  `toml:"width"`
	Height   int32  `toml:"height"`
	Boundary string `toml:"boundary"`
}

type SnakeConfig struct {
	BaseInterval Duration `toml:"base_interval"`
	IntervalStep Duration `toml:"interval_step"`
	MinInterval  Duration `toml:"min_interval"`
}

type FoodConfig struct {
	SpawnPeriod Duration `toml:"spawn_period"`
	Lifespan    Duration `toml:"lifespan"`
	Ceiling     int      `toml:"ceiling"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type SpectatorConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	MaxClients int    `toml:"max_clients"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:    parameter.ArenaWidth,
			Height:   parameter.ArenaHeight,
			Boundary: core.BoundaryWrap.String(),
		},
		Snake: SnakeConfig{
			BaseInterval: Duration{parameter.MoveIntervalBase},
			IntervalStep: Duration{parameter.MoveIntervalStep},
			MinInterval:  Duration{parameter.MoveIntervalMin},
		},
		Food: FoodConfig{
			SpawnPeriod: Duration{parameter.FoodSpawnPeriod},
			Lifespan:    Duration{parameter.FoodLifespan},
			Ceiling:     parameter.FoodCeiling,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Spectator: SpectatorConfig{
			Addr:       "127.0.0.1:8377",
			MaxClients: parameter.SpectatorMaxClients,
		},
		Keys: map[string][]string{},
	}
}

// Load reads a TOML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys %v", keys)
}

// Validate checks ranges and normalizes soft settings in place
func (c *Config) Validate() error {
	if c.Arena.Width < MinArenaSize || c.Arena.Height < MinArenaSize ||
		c.Arena.Width > MaxArenaSize || c.Arena.Height > MaxArenaSize {
		return fmt.Errorf("%w: %dx%d, each side must be within [%d, %d]",
			ErrInvalidArena, c.Arena.Width, c.Arena.Height, MinArenaSize, MaxArenaSize)
	}

	if _, err := core.ParseBoundary(c.Arena.Boundary); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
	}

	s := c.Snake
	if s.BaseInterval.Duration <= 0 || s.MinInterval.Duration <= 0 || s.IntervalStep.Duration < 0 {
		return fmt.Errorf("%w: intervals must be positive (base %v, step %v, min %v)",
			ErrInvalidTiming, s.BaseInterval, s.IntervalStep, s.MinInterval)
	}
	if s.MinInterval.Duration > s.BaseInterval.Duration {
		return fmt.Errorf("%w: min interval %v exceeds base interval %v",
			ErrInvalidTiming, s.MinInterval, s.BaseInterval)
	}
	if c.Food.SpawnPeriod.Duration <= 0 || c.Food.Lifespan.Duration <= 0 {
		return fmt.Errorf("%w: food spawn period %v and lifespan %v must be positive",
			ErrInvalidTiming, c.Food.SpawnPeriod, c.Food.Lifespan)
	}

	if c.Food.Ceiling < 0 {
		return fmt.Errorf("%w: ceiling %d is negative", ErrInvalidFood, c.Food.Ceiling)
	}

	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if c.Spectator.MaxClients <= 0 {
		c.Spectator.MaxClients = parameter.SpectatorMaxClients
	}
	return nil
}

// Boundary returns the parsed boundary policy, wrap when unparseable
func (c *Config) Boundary() core.Boundary {
	b, err := core.ParseBoundary(c.Arena.Boundary)
	if err != nil {
		return core.BoundaryWrap
	}
	return b
}
