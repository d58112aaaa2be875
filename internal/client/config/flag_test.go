package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "10", "-r", "/dev/ttyACM0", "-l", "debug"},
			expected: &Config{ServerBaseURL: "http://127.0.0.1:9090", RequestTimeout: 10 * time.Second, TagSource: "/dev/ttyACM0", LogLevel: "debug"}},
		{name: "config flag is ignored", args: []string{"cmd", "-c", "cfg.json", "-a", "http://h:1"},
			expected: &Config{ServerBaseURL: "http://h:1"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
