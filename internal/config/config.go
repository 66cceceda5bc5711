// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed        = "TANKS_SEED"
	EnvWindowScale = "TANKS_WINDOW_SCALE"
	EnvMuted       = "TANKS_MUTED"
	EnvSFXVolume   = "TANKS_SFX_VOLUME"
	EnvLogLevel    = "TANKS_LOG_LEVEL"
)

const maxWindowScale = 4

// Config holds settings for the desktop build.
type Config struct {
	Seed        int64   // 0 means time-based
	WindowScale int     // integer upscale of the fixed surface
	Muted       bool    // disables the audio context entirely
	SFXVolume   float64 // 0..1
	LogLevel    string  // debug, info, warn, error
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		WindowScale: 1,
		SFXVolume:   0.5,
		LogLevel:    "info",
	}
}

// Load reads envFile (if it exists; variables already in the environment win)
// and then the environment. A missing file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error
	if v := os.Getenv(EnvSeed); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v := os.Getenv(EnvWindowScale); v != "" {
		if cfg.WindowScale, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWindowScale, err)
		}
	}
	if v := os.Getenv(EnvMuted); v != "" {
		if cfg.Muted, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMuted, err)
		}
	}
	if v := os.Getenv(EnvSFXVolume); v != "" {
		if cfg.SFXVolume, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSFXVolume, err)
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return cfg, cfg.Validate()
}

// Validate rejects out-of-range values.
func (c Config) Validate() error {
	if c.WindowScale < 1 || c.WindowScale > maxWindowScale {
		return fmt.Errorf("window scale %d out of range [1,%d]", c.WindowScale, maxWindowScale)
	}
	if c.SFXVolume < 0 || c.SFXVolume > 1 {
		return fmt.Errorf("sfx volume %.2f out of range [0,1]", c.SFXVolume)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
