package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("employees")

	require.NoError(t, err)
	assert.NotNil(t, provider)
	assert.NotNil(t, provider.meterProvider)
	assert.NotNil(t, provider.exporter)
	assert.NotNil(t, provider.registry)
}

func TestProvider_MeterProvider(t *testing.T) {
	provider, err := NewProvider("employees")
	require.NoError(t, err)

	assert.NotNil(t, provider.MeterProvider())
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("employees")
	require.NoError(t, err)

	assert.NotNil(t, provider.Handler())
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("employees")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilMeterProvider", func(t *testing.T) {
		provider := &Provider{meterProvider: nil}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
