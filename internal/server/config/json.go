package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rfidcredits/internal/flagx"
	"github.com/dmitrijs2005/rfidcredits/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. Keys missing from the file leave Config untouched.
type JsonConfig struct {
	EndpointAddr            string          `json:"endpoint_addr"`
	DatabaseDSN             string          `json:"database_dsn"`
	DataDir                 string          `json:"data_dir"`
	SecretKey               string          `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	AdminUser               string          `json:"admin_user"`
	AdminPassword           string          `json:"admin_password"`
	SpinCost                *int64          `json:"spin_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config flags, falling back to
// RFIDSERVER_CONFIG. If neither is set, no JSON file is loaded.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath(os.Args[1:], EnvConfigFile)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay := func(v string, dst *string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(c.EndpointAddr, &config.EndpointAddr)
	overlay(c.DatabaseDSN, &config.DatabaseDSN)
	overlay(c.DataDir, &config.DataDir)
	overlay(c.SecretKey, &config.SecretKey)
	overlay(c.AdminUser, &config.AdminUser)
	overlay(c.AdminPassword, &config.AdminPassword)

	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.SpinCost != nil {
		config.SpinCost = *c.SpinCost
	}
}
