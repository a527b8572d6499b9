package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	before := otel.GetTracerProvider()

	for _, cfg := range []Config{
		{Enabled: false, Endpoint: "http://collector:4318"},
		{Enabled: true, Endpoint: ""},
	} {
		shutdown, err := Setup(context.Background(), cfg)
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	}

	assert.Equal(t, before, otel.GetTracerProvider())
}
