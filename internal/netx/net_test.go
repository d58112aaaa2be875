package netx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "ip and port", raw: "http://103.213.247.25:8000", want: "http://103.213.247.25:8000"},
		{name: "trailing slash dropped", raw: "http://127.0.0.1:8000/", want: "http://127.0.0.1:8000"},
		{name: "path prefix kept", raw: " https://pay.example/api/ ", want: "https://pay.example/api"},
		{name: "no scheme", raw: "127.0.0.1:8000", wantErr: true},
		{name: "ftp scheme", raw: "ftp://host", wantErr: true},
		{name: "missing host", raw: "http://", wantErr: true},
		{name: "query", raw: "http://host?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseBaseURL(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestResolvePath(t *testing.T) {
	base, err := ParseBaseURL("http://127.0.0.1:8000")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/auth/login", ResolvePath(base, "/auth/login"))

	prefixed, err := ParseBaseURL("http://127.0.0.1:8000/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/api/admin/add", ResolvePath(prefixed, "admin/add"))

	// base is not mutated
	assert.Equal(t, "http://127.0.0.1:8000/api", prefixed.String())
}
