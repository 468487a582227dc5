// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Game     GameConfig     `yaml:"game"`
	Predator PredatorConfig `yaml:"predator"`
	Prey     PreyConfig     `yaml:"prey"`
	Output   OutputConfig   `yaml:"output"`
	UI       UIConfig       `yaml:"ui"`
}

// BoardConfig holds board dimensions.
type BoardConfig struct {
	Length int `yaml:"length"` // side length, 1 through 8
}

// GameConfig holds game length and randomness parameters.
type GameConfig struct {
	Rounds      int   `yaml:"rounds"`
	Seed        int64 `yaml:"seed"`         // 0 seeds from the clock
	CustomStart bool  `yaml:"custom_start"` // use the per-side starting level and count
}

// PredatorConfig holds predator-side parameters.
type PredatorConfig struct {
	Starvation    int `yaml:"starvation"` // rounds a predator survives without eating
	StartingLevel int `yaml:"starting_level"`
	StartingCount int `yaml:"starting_count"`
}

// PreyConfig holds prey-side parameters.
type PreyConfig struct {
	StartingLevel int `yaml:"starting_level"`
	StartingCount int `yaml:"starting_count"`
}

// OutputConfig holds reporting destinations. Empty paths disable the
// corresponding output.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // CSV output directory
	Archive  string `yaml:"archive"`  // SQLite archive path
	Snapshot string `yaml:"snapshot"` // JSON snapshot written at game end
}

// UIConfig holds viewer parameters.
type UIConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TargetFPS  int     `yaml:"target_fps"`
	RevealTick float64 `yaml:"reveal_tick"` // seconds between diagonal reveal waves
	RoundPause float64 `yaml:"round_pause"` // seconds results stay up before the next round
}

// SettingError reports an update against a setting that does not exist.
// Field is empty when the category itself is unknown.
type SettingError struct {
	Category string
	Field    string
}

func (e *SettingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: unknown settings category %q", e.Category)
	}
	return fmt.Sprintf("config: unknown setting %q in category %q", e.Field, e.Category)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults, and validates the result. If path is empty, only embedded
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites keys present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every bound the core treats as a caller contract. User
// input becomes an error here, before it can reach the simulation.
func (c *Config) Validate() error {
	if c.Board.Length < 1 || c.Board.Length > 8 {
		return fmt.Errorf("config: board length %d outside [1, 8]", c.Board.Length)
	}
	if c.Game.Rounds < 1 {
		return fmt.Errorf("config: rounds %d below 1", c.Game.Rounds)
	}
	if c.Predator.Starvation < 1 {
		return fmt.Errorf("config: starvation %d below 1", c.Predator.Starvation)
	}
	if c.Predator.StartingLevel < 0 || c.Prey.StartingLevel < 0 {
		return fmt.Errorf("config: starting levels must not be negative")
	}
	if c.Game.CustomStart {
		capacity := c.Board.Length * c.Board.Length * 4
		if c.Predator.StartingCount < 0 || c.Predator.StartingCount > capacity {
			return fmt.Errorf("config: predator starting count %d outside [0, %d]", c.Predator.StartingCount, capacity)
		}
		if c.Prey.StartingCount < 0 || c.Prey.StartingCount > capacity {
			return fmt.Errorf("config: prey starting count %d outside [0, %d]", c.Prey.StartingCount, capacity)
		}
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 || c.UI.TargetFPS <= 0 {
		return fmt.Errorf("config: ui dimensions and target fps must be positive")
	}
	if c.UI.RevealTick < 0 || c.UI.RoundPause < 0 {
		return fmt.Errorf("config: ui delays must not be negative")
	}
	return nil
}

// Set updates one setting by category and field name, parsing the value
// to the field's type. Unknown categories and unknown fields are distinct
// *SettingError values; a value that fails validation leaves the config
// unchanged.
func (c *Config) Set(category, field, value string) error {
	next := *c
	if err := next.apply(category, field, value); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Config) apply(category, field, value string) error {
	switch category {
	case "board":
		switch field {
		case "length":
			return setInt(&c.Board.Length, category, field, value)
		}
	case "game":
		switch field {
		case "rounds":
			return setInt(&c.Game.Rounds, category, field, value)
		case "seed":
			seed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("config: parsing %s.%s=%q: %w", category, field, value, err)
			}
			c.Game.Seed = seed
			return nil
		case "custom_start":
			return setBool(&c.Game.CustomStart, category, field, value)
		}
	case "predator":
		switch field {
		case "starvation":
			return setInt(&c.Predator.Starvation, category, field, value)
		case "starting_level":
			return setInt(&c.Predator.StartingLevel, category, field, value)
		case "starting_count":
			return setInt(&c.Predator.StartingCount, category, field, value)
		}
	case "prey":
		switch field {
		case "starting_level":
			return setInt(&c.Prey.StartingLevel, category, field, value)
		case "starting_count":
			return setInt(&c.Prey.StartingCount, category, field, value)
		}
	case "output":
		switch field {
		case "dir":
			c.Output.Dir = value
			return nil
		case "archive":
			c.Output.Archive = value
			return nil
		case "snapshot":
			c.Output.Snapshot = value
			return nil
		}
	case "ui":
		switch field {
		case "width":
			return setInt(&c.UI.Width, category, field, value)
		case "height":
			return setInt(&c.UI.Height, category, field, value)
		case "target_fps":
			return setInt(&c.UI.TargetFPS, category, field, value)
		case "reveal_tick":
			return setFloat(&c.UI.RevealTick, category, field, value)
		case "round_pause":
			return setFloat(&c.UI.RoundPause, category, field, value)
		}
	default:
		return &SettingError{Category: category}
	}
	return &SettingError{Category: category, Field: field}
}

func setInt(dst *int, category, field, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("config: parsing %s.%s=%q: %w", category, field, value, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, category, field, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("config: parsing %s.%s=%q: %w", category, field, value, err)
	}
	*dst = b
	return nil
}

func setFloat(dst *float64, category, field, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("config: parsing %s.%s=%q: %w", category, field, value, err)
	}
	*dst = f
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
