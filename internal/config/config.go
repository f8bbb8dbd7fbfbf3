package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DatabaseURL   string
	SiteBaseURL   string
	DefaultLocale string

	CORSAllowedOrigins []string

	// Storage (attachment uploads)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	StorageBucket       string
	StoragePublicURL    string

	// Pipedrive CRM
	PipedriveAPIToken string
	PipedriveAPIURL   string

	// Telegram bot
	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string

	// Slack webhook
	SlackWebhookURL string

	// Outbound HTTP hardening
	IntegrationTimeout time.Duration

	// Admin lead listing
	AdminToken string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		SiteBaseURL:         getEnv("SITE_BASE_URL", ""),
		DefaultLocale:       getEnv("DEFAULT_LOCALE", "uk"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		AWSRegion:           getEnv("AWS_REGION", "eu-central-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		StorageBucket:       getEnv("STORAGE_BUCKET", "kitchen-assets"),
		StoragePublicURL:    getEnv("STORAGE_PUBLIC_URL", ""),
		PipedriveAPIToken:   getEnv("PIPEDRIVE_API_TOKEN", ""),
		PipedriveAPIURL:     getEnv("PIPEDRIVE_API_URL", "https://api.pipedrive.com/v1"),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getEnv("TELEGRAM_CHAT_ID", ""),
		TelegramAPIURL:      getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		SlackWebhookURL:     getEnv("SLACK_WEBHOOK_URL", ""),
		IntegrationTimeout:  getEnvAsDuration("INTEGRATION_TIMEOUT", 10*time.Second),
		AdminToken:          getEnv("ADMIN_TOKEN", ""),
	}
}

// Validate checks the configuration at process start. Missing sink credentials
// are a valid state (the contact pipeline degrades gracefully), but values
// that are present must be usable.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if c.SlackWebhookURL != "" {
		if _, err := url.ParseRequestURI(c.SlackWebhookURL); err != nil {
			problems = append(problems, "SLACK_WEBHOOK_URL is not a valid URL")
		}
	}
	if c.StoragePublicURL != "" {
		if _, err := url.ParseRequestURI(c.StoragePublicURL); err != nil {
			problems = append(problems, "STORAGE_PUBLIC_URL is not a valid URL")
		}
	}
	if c.TelegramBotToken != "" && strings.TrimSpace(c.TelegramChatID) == "" {
		problems = append(problems, "TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	if c.IntegrationTimeout <= 0 {
		problems = append(problems, "INTEGRATION_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PipedriveEnabled reports whether the CRM sink has credentials.
func (c *Config) PipedriveEnabled() bool {
	return strings.TrimSpace(c.PipedriveAPIToken) != ""
}

// TelegramEnabled reports whether the chat sink has credentials.
func (c *Config) TelegramEnabled() bool {
	return strings.TrimSpace(c.TelegramBotToken) != "" && strings.TrimSpace(c.TelegramChatID) != ""
}

// SlackEnabled reports whether the webhook sink has credentials.
func (c *Config) SlackEnabled() bool {
	return strings.TrimSpace(c.SlackWebhookURL) != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
