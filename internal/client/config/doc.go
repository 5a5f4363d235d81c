// Package config loads runtime configuration for the Light Lens CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional dotenv file (-e/-env, or ./.env when present)
//     followed by LIGHTLENS_* variables (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   path of the SQLite session database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # Environment
//
//	LIGHTLENS_BACKEND_URL, LIGHTLENS_SESSION_DB,
//	LIGHTLENS_REQUEST_TIMEOUT (Go duration, e.g. "10s"), LIGHTLENS_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "backend_url": "http://localhost:8080",
//	  "session_db": "lightlens.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
