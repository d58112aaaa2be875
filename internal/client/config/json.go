package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rfidcredits/internal/flagx"
	"github.com/dmitrijs2005/rfidcredits/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout relies on timex.Duration so it can be "10s" or nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string          `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	TagSource      string          `json:"tag_source"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c/-config, falling back to RFIDCREDITS_CONFIG.
// Without a path nothing happens. Only keys present in the file are applied.
// Read or unmarshal errors panic; LoadConfig runs before anything else is
// set up, so failing loudly is preferred over running with a half config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath(os.Args[1:], EnvConfigFile)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TagSource != "" {
		cfg.TagSource = jc.TagSource
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
