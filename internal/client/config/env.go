package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvServer     = "RFIDCREDITS_SERVER"
	EnvTimeout    = "RFIDCREDITS_TIMEOUT"
	EnvTagSource  = "RFIDCREDITS_TAG_SOURCE"
	EnvLogLevel   = "RFIDCREDITS_LOG_LEVEL"
	EnvConfigFile = "RFIDCREDITS_CONFIG"
)

// dotenvFiles is a test seam; nil makes godotenv look for ./.env.
var dotenvFiles []string

// parseEnv loads an optional .env file (existing variables win) and overlays
// the RFIDCREDITS_* variables that are set. An unparsable timeout is ignored.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFiles...)

	if v := strings.TrimSpace(os.Getenv(EnvServer)); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTagSource)); v != "" {
		cfg.TagSource = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}
