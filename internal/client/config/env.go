package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/lightlens/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envBackendURL     = "LIGHTLENS_BACKEND_URL"
	envSessionDB      = "LIGHTLENS_SESSION_DB"
	envRequestTimeout = "LIGHTLENS_REQUEST_TIMEOUT"
	envLogLevel       = "LIGHTLENS_LOG_LEVEL"
)

// parseEnv loads an optional dotenv file and overlays LIGHTLENS_* variables.
//
// An explicit -e/-env file must exist; the implicit ./.env is skipped when
// missing. Variables already present in the process environment win over
// the file (godotenv.Load never overrides). Panics on unreadable files or
// malformed durations.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := os.LookupEnv(envSessionDB); ok && v != "" {
		cfg.SessionDBPath = v
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
