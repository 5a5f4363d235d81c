package config

import "time"

// Config holds runtime settings for the Light Lens CLI.
type Config struct {
	BackendURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
	LogLevel       string

	// FakeBackend serves an in-memory backend on a local port and points
	// BackendURL at it.
	FakeBackend bool
}

// LoadDefaults populates c with defaults matching a local backend.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:8080"
	c.SessionDBPath = "lightlens.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then environment, JSON and flags in that
// order. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
