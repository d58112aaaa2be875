package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://103.213.247.25:8000", c.ServerBaseURL)
	assert.Zero(t, c.RequestTimeout)
	assert.Empty(t, c.TagSource)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_base_url": "http://json:8000",
		"tag_source":      "/dev/ttyUSB0",
	})

	t.Setenv(EnvServer, "http://env:8000")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvConfigFile, path)

	os.Args = []string{"testbin", "-t", "7"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "http://json:8000", cfg.ServerBaseURL, "json overrides env")
	assert.Equal(t, "debug", cfg.LogLevel, "env kept when json is silent")
	assert.Equal(t, "/dev/ttyUSB0", cfg.TagSource)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout, "flag overrides everything")
}

func TestLoadConfig_SubSecondTimeoutSurvivesWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv(EnvConfigFile, "")

	for _, tt := range []struct {
		env  string
		want time.Duration
	}{
		{env: "500ms", want: 500 * time.Millisecond},
		{env: "1500ms", want: 1500 * time.Millisecond},
	} {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(EnvTimeout, tt.env)
			assert.Equal(t, tt.want, LoadConfig().RequestTimeout)
		})
	}
}

func TestLoadConfig_JSONTimeoutSurvivesWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{"request_timeout": "750ms"})
	os.Args = []string{"testbin", "-c", path}

	assert.Equal(t, 750*time.Millisecond, LoadConfig().RequestTimeout)
}
