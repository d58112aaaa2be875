package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAddr          = "RFIDSERVER_ADDR"
	EnvDSN           = "RFIDSERVER_DSN"
	EnvDataDir       = "RFIDSERVER_DATA_DIR"
	EnvSecretKey     = "RFIDSERVER_SECRET_KEY"
	EnvAdminUser     = "RFIDSERVER_ADMIN_USER"
	EnvAdminPassword = "RFIDSERVER_ADMIN_PASSWORD"
	EnvSpinCost      = "RFIDSERVER_SPIN_COST"
	EnvConfigFile    = "RFIDSERVER_CONFIG"
)

var dotenvFiles []string

// parseEnv loads an optional .env file, then applies the RFIDSERVER_*
// variables that are set.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotenvFiles...)

	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString(EnvAddr, &cfg.EndpointAddr)
	setString(EnvDSN, &cfg.DatabaseDSN)
	setString(EnvDataDir, &cfg.DataDir)
	setString(EnvSecretKey, &cfg.SecretKey)
	setString(EnvAdminUser, &cfg.AdminUser)
	setString(EnvAdminPassword, &cfg.AdminPassword)

	if v := strings.TrimSpace(os.Getenv(EnvSpinCost)); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.SpinCost = n
		}
	}
}
