// Package config loads the decode pipeline settings from the environment
// (prefix LVFST) with envconfig.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvfst/compose"
	"github.com/katalvlaran/lvfst/internal/logging"
)

// Prefix is the environment variable prefix: LVFST_LOG_LEVEL, ...
const Prefix = "LVFST"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of the decode pipeline.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// LogsumWorkers bounds concurrent symbol groups in parallel posteriors.
	LogsumWorkers int `envconfig:"LOGSUM_WORKERS" default:"4"`
	// BeamAlpha is the relative beam width used by Prune.
	BeamAlpha float64 `envconfig:"BEAM_ALPHA" default:"0.5"`
	// KBestMax caps the n accepted by KBest.
	KBestMax int `envconfig:"KBEST_MAX" default:"10"`
	// ComposeMode is "mode1", "mode2" or "naive".
	ComposeMode string `envconfig:"COMPOSE_MODE" default:"mode1"`
}

// Default returns the documented defaults without reading the environment.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogFormat:     "json",
		LogsumWorkers: 4,
		BeamAlpha:     0.5,
		KBestMax:      10,
		ComposeMode:   "mode1",
	}
}

// Load reads the environment over the defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console", "text":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalid, c.LogFormat)
	}
	if c.LogsumWorkers < 1 {
		return fmt.Errorf("%w: LOGSUM_WORKERS %d < 1", ErrInvalid, c.LogsumWorkers)
	}
	if !(c.BeamAlpha >= 0 && c.BeamAlpha <= 1) {
		return fmt.Errorf("%w: BEAM_ALPHA %v outside [0,1]", ErrInvalid, c.BeamAlpha)
	}
	if c.KBestMax < 1 {
		return fmt.Errorf("%w: KBEST_MAX %d < 1", ErrInvalid, c.KBestMax)
	}
	if _, err := compose.ParseMode(c.ComposeMode); err != nil {
		return fmt.Errorf("%w: COMPOSE_MODE: %v", ErrInvalid, err)
	}

	return nil
}

// Mode returns the parsed composition mode. Call after Validate.
func (c Config) Mode() compose.Mode {
	m, err := compose.ParseMode(c.ComposeMode)
	if err != nil {
		return compose.Mode1
	}

	return m
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Format = c.LogFormat

	return lc
}
