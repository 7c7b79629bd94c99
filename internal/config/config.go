// Package config provides runtime configuration for stopwatches.
//
// Values come from built-in defaults, overlaid by STOPWATCHES_* environment
// variables, overlaid by command-line flags (see internal/cli).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultRefreshRate is the display refresh rate for running stopwatches, in Hz.
	DefaultRefreshRate = 60.0
	// MaxRefreshRate bounds how often a running stopwatch repaints.
	MaxRefreshRate = 240.0
	// DefaultInitial is the number of stopwatches shown at startup.
	DefaultInitial = 1
	// MaxInitial bounds the startup stopwatch count.
	MaxInitial = 100
	// DefaultServiceName is the OpenTelemetry service name.
	DefaultServiceName = "stopwatches"
)

// Config holds the settings for one run.
type Config struct {
	RefreshRate float64 // Hz
	Initial     int
	Theme       string // "dark" or "light"
	LogFile     string // empty disables logging
	LogLevel    string

	// OTLPEndpoint enables span export when set (host:port).
	OTLPEndpoint string
	ServiceName  string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RefreshRate: DefaultRefreshRate,
		Initial:     DefaultInitial,
		Theme:       "dark",
		LogLevel:    "info",
		ServiceName: DefaultServiceName,
	}
}

// FromEnv returns Default overlaid by environment variables. Malformed
// numeric values are ignored.
func FromEnv() Config {
	d := Default()
	return Config{
		RefreshRate:  getEnvOrDefaultFloat("STOPWATCHES_REFRESH_RATE", d.RefreshRate),
		Initial:      getEnvOrDefaultInt("STOPWATCHES_INITIAL", d.Initial),
		Theme:        getEnvOrDefault("STOPWATCHES_THEME", d.Theme),
		LogFile:      getEnvOrDefault("STOPWATCHES_LOG_FILE", d.LogFile),
		LogLevel:     getEnvOrDefault("STOPWATCHES_LOG_LEVEL", d.LogLevel),
		OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", d.OTLPEndpoint),
		ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", d.ServiceName),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.RefreshRate <= 0 || c.RefreshRate > MaxRefreshRate {
		return fmt.Errorf("refresh rate %v: must be in (0, %v]", c.RefreshRate, MaxRefreshRate)
	}
	if c.Initial < 0 || c.Initial > MaxInitial {
		return fmt.Errorf("initial count %d: must be in [0, %d]", c.Initial, MaxInitial)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("theme %q: must be dark or light", c.Theme)
	}
	return nil
}

// RefreshInterval converts RefreshRate to a tick interval. A non-positive
// rate falls back to DefaultRefreshRate.
func (c Config) RefreshInterval() time.Duration {
	rate := c.RefreshRate
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	return time.Duration(float64(time.Second) / rate)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvOrDefaultInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvOrDefaultFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
