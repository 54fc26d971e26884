// Package config loads the game's tuning from the embedded defaults, an
// optional YAML override file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"slingshot/internal/assets"
	"slingshot/internal/handle"
	"slingshot/internal/reveal"
)

var ErrInvalid = errors.New("invalid config")

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Config struct {
	LogLevel string `yaml:"log_level"`
	Seed     int64  `yaml:"seed"`

	Screen struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Scale  int    `yaml:"scale"`
		Title  string `yaml:"title"`
	} `yaml:"screen"`

	Slingshot struct {
		Rest        Point   `yaml:"rest"`
		MaxLength   float64 `yaml:"max_length"`
		InnerRadius float64 `yaml:"inner_radius"`
		OuterRadius float64 `yaml:"outer_radius"`
		ReturnSpeed float64 `yaml:"return_speed"`
	} `yaml:"slingshot"`

	Timing struct {
		BlinkInterval time.Duration `yaml:"blink_interval"`
		BlinkDuration time.Duration `yaml:"blink_duration"`
		Settle        time.Duration `yaml:"settle"`
		Hold          time.Duration `yaml:"hold"`
	} `yaml:"timing"`

	Texts struct {
		Placeholder string `yaml:"placeholder"`
		EmptyPrompt string `yaml:"empty_prompt"`
	} `yaml:"texts"`

	Sound struct {
		Enabled bool    `yaml:"enabled"`
		Volume  float64 `yaml:"volume"`
	} `yaml:"sound"`

	Answers []string `yaml:"answers"`
}

// Load builds the config: embedded defaults, then the file at path if
// non-empty, then SLINGSHOT_* environment overrides.
func Load(path string) (*Config, error) {
	data, err := assets.Read("config.yaml")
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv loads the config named by SLINGSHOT_CONFIG, if any.
func FromEnv() (*Config, error) {
	return Load(getEnv("SLINGSHOT_CONFIG", ""))
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("SLINGSHOT_LOG_LEVEL", c.LogLevel)
	c.Screen.Scale = getEnvAsInt("SLINGSHOT_SCALE", c.Screen.Scale)
	c.Sound.Enabled = getEnvAsBool("SLINGSHOT_SOUND", c.Sound.Enabled)
}

func (c *Config) Validate() error {
	s := c.Slingshot
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Screen.Scale)
	case s.InnerRadius <= 0 || s.OuterRadius <= s.InnerRadius:
		return fmt.Errorf("%w: radii inner=%g outer=%g", ErrInvalid, s.InnerRadius, s.OuterRadius)
	case s.MaxLength <= 0:
		return fmt.Errorf("%w: max_length %g", ErrInvalid, s.MaxLength)
	case s.ReturnSpeed <= 0 || s.ReturnSpeed > 1:
		return fmt.Errorf("%w: return_speed %g not in (0,1]", ErrInvalid, s.ReturnSpeed)
	}

	t := c.Timing
	if t.BlinkInterval <= 0 || t.BlinkDuration <= 0 || t.Settle <= 0 || t.Hold <= 0 {
		return fmt.Errorf("%w: timings must be positive", ErrInvalid)
	}
	if t.BlinkInterval > t.BlinkDuration {
		return fmt.Errorf("%w: blink_interval %v longer than blink_duration %v", ErrInvalid, t.BlinkInterval, t.BlinkDuration)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: volume %g not in [0,1]", ErrInvalid, c.Sound.Volume)
	}
	if len(c.Answers) == 0 {
		return fmt.Errorf("%w: no answers", ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) Geometry() handle.Geometry {
	s := c.Slingshot
	return handle.Geometry{
		Rest:        handle.Vec{X: s.Rest.X, Y: s.Rest.Y},
		MaxLength:   s.MaxLength,
		InnerRadius: s.InnerRadius,
		OuterRadius: s.OuterRadius,
		ReturnSpeed: s.ReturnSpeed,
	}
}

func (c *Config) RevealTiming() reveal.Timing {
	return reveal.Timing{
		BlinkInterval: c.Timing.BlinkInterval,
		BlinkDuration: c.Timing.BlinkDuration,
		Settle:        c.Timing.Settle,
		Hold:          c.Timing.Hold,
	}
}

func (c *Config) RevealTexts() reveal.Texts {
	return reveal.Texts{
		Placeholder: c.Texts.Placeholder,
		EmptyPrompt: c.Texts.EmptyPrompt,
	}
}

// Level is the parsed log level. Validate has already checked it.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
