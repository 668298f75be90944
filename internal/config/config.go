package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	AppName = "World Countries Information"
	AppID   = "com.worldcountries.lookup"

	// DefaultEndpoint requests only the fields the catalog needs.
	DefaultEndpoint = "https://restcountries.com/v3.1/all?fields=name,population,cca2"
	DefaultTimeout  = 15 * time.Second

	DefaultWindowWidth  = 600
	DefaultWindowHeight = 650
)

// Config carries process-wide settings. Only the log level is taken from the
// environment; everything else is fixed.
type Config struct {
	AppID        string
	AppName      string
	Endpoint     string
	Timeout      time.Duration
	WindowWidth  float32
	WindowHeight float32
	LogLevel     zerolog.Level
}

// Load returns the default configuration with the log level resolved from
// LOG_LEVEL, or DEBUG=1 as a shorthand for debug.
func Load() Config {
	return Config{
		AppID:        AppID,
		AppName:      AppName,
		Endpoint:     DefaultEndpoint,
		Timeout:      DefaultTimeout,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     determineLogLevel(os.Getenv("LOG_LEVEL"), os.Getenv("DEBUG")),
	}
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func determineLogLevel(level, debug string) zerolog.Level {
	if level != "" {
		return ParseLevel(level)
	}
	if debug == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
