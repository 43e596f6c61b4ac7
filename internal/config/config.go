package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	BusinessName  string
	PublicBaseURL string // externally visible base URL, used for webhook signature validation

	TwilioAuthToken string // empty disables webhook signature validation

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	SNSRegion      string

	AuditEnabled bool
	AuditTable   string

	RateLimitWindow time.Duration // minimum gap between verification starts per caller
	SessionTTL      time.Duration // verification code lifetime
	MaxAttempts     int           // failed code entries before a session is discarded
	SMSTimeout      time.Duration // upper bound on one outbound SMS dispatch

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string
	SupportEmail string // callback requests from the agent menu go here

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		BusinessName:  getEnv("BUSINESS_NAME", "Business Verification Services"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		TwilioAuthToken: getEnv("TWILIO_AUTH_TOKEN", ""),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		SNSRegion:      getEnv("SNS_REGION", "us-east-1"),

		AuditEnabled: getEnvBool("AUDIT_ENABLED", true),
		AuditTable:   getEnv("DYNAMO_TABLE_VERIFICATION_AUDIT", "verification_audit"),

		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 300)) * time.Second,
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_SECONDS", 600)) * time.Second,
		MaxAttempts:     getEnvInt("MAX_CODE_ATTEMPTS", 3),
		SMSTimeout:      time.Duration(getEnvInt("SMS_TIMEOUT_SECONDS", 5)) * time.Second,

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SupportEmail: getEnv("SUPPORT_EMAIL", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
