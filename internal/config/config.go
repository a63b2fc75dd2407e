package config

import (
	"os"
	"strconv"
	"strings"
)

// ColorMode controls whether terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds runtime settings for the tracker CLI.
type Config struct {
	LogEvents bool
	Color     ColorMode
}

// DefaultConfig returns a Config with event logging disabled and automatic colour.
func DefaultConfig() Config {
	return Config{
		LogEvents: false,
		Color:     ColorAuto,
	}
}

// Load reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("FITTRACK_LOG_EVENTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogEvents = b
		}
	}
	if v := os.Getenv("FITTRACK_COLOR"); v != "" {
		switch mode := ColorMode(strings.ToLower(v)); mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		}
	}

	return cfg
}

// UseColor resolves the colour mode against whether stdout is a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
