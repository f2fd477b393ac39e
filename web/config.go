// File: web/config.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package web

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config holds the solver service configuration.
type Config struct {
	// Server
	Environment string
	ServerPort  string
	LogLevel    string

	// Limits
	RatePerSec float64 // sustained request rate for the solve endpoints
	RateBurst  int

	// Plotting
	PlotSamples int // sample points returned for client-side plotting
}

// Load returns the built-in defaults.
func Load() *Config {
	return &Config{
		Environment: "development",
		ServerPort:  "8080",
		LogLevel:    "info",

		RatePerSec: 50,
		RateBurst:  100,

		PlotSamples: 100,
	}
}

// LoadFile returns the defaults overridden by the INI file at path.
// Recognized keys: [server] environment, port, log_level;
// [limits] rate_per_sec, rate_burst; [plot] samples.
func LoadFile(path string) (*Config, error) {
	cfg := Load()
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("web: cannot load %s: %w", path, err)
	}

	server := file.Section("server")
	if v := server.Key("environment").String(); v != "" {
		cfg.Environment = v
	}
	if v := server.Key("port").String(); v != "" {
		cfg.ServerPort = v
	}
	if v := server.Key("log_level").String(); v != "" {
		cfg.LogLevel = v
	}

	limits := file.Section("limits")
	cfg.RatePerSec = limits.Key("rate_per_sec").MustFloat64(cfg.RatePerSec)
	cfg.RateBurst = limits.Key("rate_burst").MustInt(cfg.RateBurst)

	cfg.PlotSamples = file.Section("plot").Key("samples").MustInt(cfg.PlotSamples)
	return cfg, nil
}
