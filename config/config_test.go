package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wskproxy/clients/whisk"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "ENVIRONMENT", "LOG_LEVEL", "ALERT_WEBHOOK_URL",
		"WHISK_API_HOST", "WHISK_NAMESPACE", "WHISK_AUTH", "WHISK_INSECURE_SKIP_VERIFY", "WHISK_TIMEOUT",
		"SLACK_SIGNING_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHISK_NAMESPACE", "guest")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, whisk.DefaultAPIHost, cfg.WhiskConfig.APIHost)
	assert.Equal(t, "guest", cfg.WhiskConfig.Namespace)
	assert.Empty(t, cfg.WhiskConfig.Auth)
	assert.True(t, cfg.WhiskConfig.InsecureSkipVerify)
	assert.Zero(t, cfg.WhiskConfig.Timeout)
	assert.True(t, cfg.WhiskConfig.IsConfigured())
	assert.False(t, cfg.SlackConfig.IsConfigured())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHISK_NAMESPACE", "ioana%40us.ibm.com_dev")
	t.Setenv("WHISK_API_HOST", "http://localhost:3233")
	t.Setenv("WHISK_AUTH", "user:pass")
	t.Setenv("WHISK_INSECURE_SKIP_VERIFY", "false")
	t.Setenv("WHISK_TIMEOUT", "45s")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.WhiskConfig.InsecureSkipVerify)
	assert.Equal(t, 45*time.Second, cfg.WhiskConfig.Timeout)
	assert.True(t, cfg.SlackConfig.IsConfigured())
	assert.Equal(t, whisk.Config{APIHost: "http://localhost:3233", Namespace: "ioana%40us.ibm.com_dev"}, cfg.WhiskConfig.ClientConfig())
}

func TestLoadConfig_MissingNamespace(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "WHISK_NAMESPACE is not set")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WHISK_NAMESPACE", "guest")
	t.Setenv("WHISK_INSECURE_SKIP_VERIFY", "maybe")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "WHISK_INSECURE_SKIP_VERIFY")

	t.Setenv("WHISK_INSECURE_SKIP_VERIFY", "")
	t.Setenv("WHISK_TIMEOUT", "soon")

	_, err = LoadConfig()
	assert.ErrorContains(t, err, "WHISK_TIMEOUT")
}
