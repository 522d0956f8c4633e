// Package config loads the tempers CLI configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/whatf0xx/tempers/mt"
)

// configValidate is the validator instance for Config.
var configValidate = validator.New()

// Config is the CLI configuration.
type Config struct {
	Seed    uint32        `yaml:"seed"`
	Log     LogConfig     `yaml:"log"`
	Predict PredictConfig `yaml:"predict"`
	Search  SearchConfig  `yaml:"search"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// PredictConfig configures stream prediction.
type PredictConfig struct {
	Lookahead int `yaml:"lookahead" validate:"min=1,max=624"`
	Count     int `yaml:"count" validate:"min=0"`
}

// SearchConfig configures seed searches.
type SearchConfig struct {
	// Workers is the number of search goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"min=0,max=1024"`
	// Window is how many seconds back a timestamp search looks.
	Window uint32 `yaml:"window" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: mt.DefaultSeed,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Predict: PredictConfig{
			Lookahead: 1,
			Count:     10,
		},
		Search: SearchConfig{
			Workers: 0,
			Window:  24 * 60 * 60,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel returns the slog level named by Log.Level.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
