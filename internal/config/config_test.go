package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-cli/internal/client"
)

func TestClientConfig_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := ClientConfig(v)
	assert.Equal(t, client.DefaultBaseURL, cfg.BaseURL)
	assert.False(t, cfg.Insecure)
	assert.Zero(t, cfg.Timeout)
}

func TestClientConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parking.yaml")
	content := "base_url: https://parking.local/api/v1/\ninsecure: true\ntimeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg := ClientConfig(v)
	assert.Equal(t, "https://parking.local/api/v1", cfg.BaseURL)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}
