// Package config handles configuration for the development credit server,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the credit server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: SQLite DSN; empty means <DataDir>/shop.db.
//   - DataDir: directory for the database file, created on startup.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use test defaults in prod.
//   - SessionValidityDuration: lifetime of the session cookie.
//   - AdminUser / AdminPassword: account seeded at startup if absent.
//   - SpinCost: credits deducted per gateway request.
type Config struct {
	EndpointAddr            string
	DatabaseDSN             string
	DataDir                 string
	SecretKey               string
	SessionValidityDuration time.Duration
	AdminUser               string
	AdminPassword           string
	SpinCost                int64
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = ""
	c.DataDir = "data"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 60 * time.Minute
	c.AdminUser = "admin"
	c.AdminPassword = "admin"
	c.SpinCost = 10
}

// DSN returns DatabaseDSN, or the shop.db file inside dataDir when unset.
func (c *Config) DSN(dataDir string) string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return "file:" + filepath.Join(dataDir, "shop.db")
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
