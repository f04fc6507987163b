package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"parking-cli/internal/client"
)

func TestServiceConfig_ForwardsClientSettings(t *testing.T) {
	cfg := client.ClientConfig{
		BaseURL:  "https://parking.local/api/v1",
		Insecure: true,
		Timeout:  5 * time.Second,
	}

	svc := serviceConfig("9090", cfg)

	assert.Equal(t, []string{"web", "--port", "9090"}, svc.Arguments)
	assert.Equal(t, "https://parking.local/api/v1", svc.EnvVars["PARKING_BASE_URL"])
	assert.Equal(t, "true", svc.EnvVars["PARKING_INSECURE"])
	assert.Equal(t, "5s", svc.EnvVars["PARKING_TIMEOUT"])
}

func TestServiceConfig_DefaultsHaveNoTimeout(t *testing.T) {
	svc := serviceConfig("8080", client.ClientConfig{BaseURL: client.DefaultBaseURL})

	assert.Equal(t, "false", svc.EnvVars["PARKING_INSECURE"])
	assert.Equal(t, "0s", svc.EnvVars["PARKING_TIMEOUT"])
}

func TestProgram_StartStop(t *testing.T) {
	p := &program{
		port: "0",
		api:  client.New(client.ClientConfig{}),
	}

	require.NoError(t, p.Start(nil))
	require.NotNil(t, p.server)
	assert.Equal(t, ":0", p.server.Addr)

	assert.NoError(t, p.Stop(nil))
}
