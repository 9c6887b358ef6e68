package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"30m", 30 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"1y", 365 * 24 * time.Hour, false},
		{"10s", 0, true},
		{"h", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
format_version = "0.1.0"
server_hostname = "localhost"
server_port = "8678"
handle_cors = true

[auth]
signing_secret = "s3cret"
default_token_validity = "1h"
clock_skew = "5m"

[db]
host = "localhost"
port = 5432
dbname = "switchscope"
user = "switchscope"
password = "abc@123"
sslmode = "disable"
`
	path := filepath.Join(t.TempDir(), "switchscope.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	require.NoError(t, LoadConfig(path))
	c := Config()
	require.NotNil(t, c)
	assert.Equal(t, "8678", c.ServerPort)
	assert.Equal(t, int64(1<<20), c.MaxRequestBodySize)
	assert.Equal(t, "host=localhost port=5432 user=switchscope password=abc@123 dbname=switchscope sslmode=disable", c.DSN())
	// sealing key falls back to the eval default when unset
	assert.NotEmpty(t, c.Device.CredentialEncryptionKey)
	assert.Equal(t, time.Hour, c.Auth.GetDefaultTokenValidityOrDefault())
}

func TestLoadConfigRejectsMissingFields(t *testing.T) {
	content := `
format_version = "0.1.0"
server_port = "8678"

[auth]
signing_secret = "s3cret"
default_token_validity = "1h"
clock_skew = "5m"
`
	path := filepath.Join(t.TempDir(), "switchscope.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	assert.Error(t, LoadConfig(path))
}
