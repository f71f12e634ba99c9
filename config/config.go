package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"wskproxy/clients/whisk"
	"wskproxy/core/log"
)

type WhiskConfig struct {
	APIHost   string
	Namespace string
	// Auth is the credential forwarded for Slack slash commands, which carry none of their own
	Auth               string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// IsConfigured returns true if an action endpoint can be addressed
func (c WhiskConfig) IsConfigured() bool {
	return c.APIHost != "" && c.Namespace != ""
}

func (c WhiskConfig) ClientConfig() whisk.Config {
	return whisk.Config{
		APIHost:   c.APIHost,
		Namespace: c.Namespace,
	}
}

type SlackConfig struct {
	SigningSecret string
}

// IsConfigured returns true if slash command signatures can be verified
func (c SlackConfig) IsConfigured() bool {
	return c.SigningSecret != ""
}

type AppConfig struct {
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	LogLevel           string
	AlertWebhookURL    string

	WhiskConfig WhiskConfig
	SlackConfig SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️ Could not load .env file, continuing with system env vars")
	}

	namespace, err := getEnvRequired("WHISK_NAMESPACE")
	if err != nil {
		return nil, err
	}

	insecureSkipVerify, err := getEnvBool("WHISK_INSECURE_SKIP_VERIFY", true)
	if err != nil {
		return nil, err
	}

	timeout, err := getEnvDuration("WHISK_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		AlertWebhookURL:    os.Getenv("ALERT_WEBHOOK_URL"),

		WhiskConfig: WhiskConfig{
			APIHost:            getEnvWithDefault("WHISK_API_HOST", whisk.DefaultAPIHost),
			Namespace:          namespace,
			Auth:               os.Getenv("WHISK_AUTH"),
			InsecureSkipVerify: insecureSkipVerify,
			Timeout:            timeout,
		},

		SlackConfig: SlackConfig{
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
	}

	if config.WhiskConfig.InsecureSkipVerify {
		log.Warn("⚠️ TLS certificate verification is disabled for outbound calls (WHISK_INSECURE_SKIP_VERIFY=true)")
	}

	if config.SlackConfig.IsConfigured() {
		log.Info("✅ Slack signature verification configured")
	} else {
		log.Warn("⚠️ SLACK_SIGNING_SECRET not set - slash commands will not be verified")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 30s: %w", key, err)
	}
	return parsed, nil
}
