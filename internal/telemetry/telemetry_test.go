package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/config"
	"usersvc/internal/logging"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.ObservabilityConfig{Enabled: false}, logging.NewNop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestResolveEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, defaultEndpoint, resolveEndpoint(""))
	assert.Equal(t, "collector:4317", resolveEndpoint("collector:4317"))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "env-collector:4317")
	assert.Equal(t, "env-collector:4317", resolveEndpoint(""))
}
