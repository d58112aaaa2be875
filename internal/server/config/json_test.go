package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":             "www.example:9000",
		"database_dsn":              "file:shop.db",
		"data_dir":                  "/srv/rfid",
		"secret_key":                "my_secret_key",
		"session_validity_duration": "2h",
		"admin_user":                "boss",
		"admin_password":            "hunter2",
		"spin_cost":                 0,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{SpinCost: 10}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "file:shop.db", cfg.DatabaseDSN)
		assert.Equal(t, "/srv/rfid", cfg.DataDir)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.SessionValidityDuration)
		assert.Equal(t, "boss", cfg.AdminUser)
		assert.Equal(t, "hunter2", cfg.AdminPassword)
		assert.Equal(t, int64(0), cfg.SpinCost, "explicit zero is applied")
	})

	t.Run("loads from env", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvConfigFile, pathFlag)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvConfigFile, "")

		cfg := &Config{
			EndpointAddr:            "defaults:1234",
			SecretKey:               "key",
			SessionValidityDuration: 2 * time.Minute,
			SpinCost:                7,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.SessionValidityDuration)
		assert.Equal(t, int64(7), cfg.SpinCost)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
