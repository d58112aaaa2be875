package config

import "time"

// Config holds runtime settings for the rfidcredits CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the credit server.
//   - RequestTimeout: whole-request timeout; zero keeps transport defaults.
//   - TagSource: path of a line oriented tag reader (serial device, pipe,
//     file). Empty means tags are only entered with the scan command.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	TagSource      string
	LogLevel       string
}

// LoadDefaults populates c with the production server and quiet logging.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://103.213.247.25:8000"
	c.RequestTimeout = 0
	c.TagSource = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
