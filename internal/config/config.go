package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is built once in main and injected into components. Business logic
// never reads the environment directly.
type Config struct {
	DatabaseURL string
	Port        string

	// Delivery target visible to untrusted callers (the same-origin relay
	// path). Distinct from CoreWebhookURL, which stays server-only.
	PartnerWebhookURL string
	CoreWebhookURL    string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	NotifyEmail string
}

func Load() Config {
	godotenv.Load()

	mailPort := 587
	if v := os.Getenv("MAIL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			mailPort = p
		}
	}

	return Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Port:              envOr("PORT", "8080"),
		PartnerWebhookURL: os.Getenv("PARTNER_WEBHOOK_URL"),
		CoreWebhookURL:    os.Getenv("CORE_WEBHOOK_URL"),
		RabbitUser:        envOr("RABBITMQ_USER", "guest"),
		RabbitPass:        envOr("RABBITMQ_PASS", "guest"),
		RabbitHost:        envOr("RABBITMQ_HOST", "localhost"),
		RabbitPort:        envOr("RABBITMQ_PORT", "5672"),
		MailHost:          os.Getenv("MAIL_HOST"),
		MailPort:          mailPort,
		MailUser:          os.Getenv("MAIL_USER"),
		MailPass:          os.Getenv("MAIL_PASS"),
		NotifyEmail:       os.Getenv("NOTIFY_EMAIL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
