package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testCollectorURL = "https://collector.local/api/customers"

func TestBuildDefaults(t *testing.T) {
	t.Setenv("COLLECTOR_URL", testCollectorURL)

	cfg, err := Build()
	require.NoError(t, err, "no error must be raised")

	require.Equal(t, 3000, cfg.HTTPCfg.Port)
	require.Equal(t, 10*time.Second, cfg.HTTPCfg.ShutdownTimeout)
	require.False(t, cfg.HTTPCfg.SwaggerEnabled, "swagger must be disabled by default")
	require.False(t, cfg.HTTPCfg.HTTPSRedirect, "https redirect must be disabled by default")

	require.Equal(t, testCollectorURL, cfg.CollectorCfg.URL)
	require.Equal(t, "application/json", cfg.CollectorCfg.MediaType)
	require.Zero(t, cfg.CollectorCfg.Timeout, "no timeout must be applied by default")
	require.False(t, cfg.CollectorCfg.AuthCfg.Enabled(), "collector auth must be disabled by default")

	require.Equal(t, "info", cfg.LogCfg.Level)
	require.Equal(t, "text", cfg.LogCfg.Format)
	require.Empty(t, cfg.LogCfg.File)
}

func TestBuildOverrides(t *testing.T) {
	t.Setenv("COLLECTOR_URL", testCollectorURL)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("COLLECTOR_TIMEOUT", "5s")
	t.Setenv("COLLECTOR_AUTH_JWT_PRIVATE_KEY_FILE", "/run/secrets/collector.pem")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "/var/log/customer-relay.log")

	cfg, err := Build()
	require.NoError(t, err, "no error must be raised")

	require.Equal(t, 8080, cfg.HTTPCfg.Port)
	require.Equal(t, 5*time.Second, cfg.CollectorCfg.Timeout)
	require.True(t, cfg.CollectorCfg.AuthCfg.Enabled(), "collector auth must be enabled when key file is set")
	require.Equal(t, "json", cfg.LogCfg.Format)
	require.Equal(t, "/var/log/customer-relay.log", cfg.LogCfg.File)
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing collector url", env: map[string]string{}},
		{name: "relative collector url", env: map[string]string{"COLLECTOR_URL": "/customers"}},
		{name: "unsupported collector scheme", env: map[string]string{"COLLECTOR_URL": "ftp://collector.local/customers"}},
		{name: "invalid media type", env: map[string]string{"COLLECTOR_URL": testCollectorURL, "COLLECTOR_MEDIA_TYPE": "json;;"}},
		{name: "negative timeout", env: map[string]string{"COLLECTOR_URL": testCollectorURL, "COLLECTOR_TIMEOUT": "-1s"}},
		{name: "unknown log format", env: map[string]string{"COLLECTOR_URL": testCollectorURL, "LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLLECTOR_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Build()
			require.Error(t, err, "invalid configuration must be rejected")
		})
	}
}
