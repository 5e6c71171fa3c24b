package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	DatabaseURL    string
	AllowedOrigins []string

	// Chat / generative provider
	GeminiAPIKey string
	GeminiModel  string
	ChatTimeout  time.Duration

	// Google Calendar
	CalendarCredentialsJSON string
	CalendarID              string
	BusinessEmail           string
	BusinessTimezone        string

	// Business-hours window for bookable slots
	BusinessStartHour int
	BusinessEndHour   int
	SlotMinutes       int

	// SendGrid email notifications
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string

	// Per-IP rate limit applied to public form submissions
	FormRatePerSecond float64
	FormRateBurst     int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ChatTimeout:  getEnvAsDuration("CHAT_TIMEOUT", 8*time.Second),

		CalendarCredentialsJSON: getEnv("GOOGLE_CALENDAR_CREDENTIALS", ""),
		CalendarID:              getEnv("GOOGLE_CALENDAR_ID", "primary"),
		BusinessEmail:           getEnv("BUSINESS_EMAIL", "hello@codebridge.tech"),
		BusinessTimezone:        getEnv("BUSINESS_TIMEZONE", "America/New_York"),

		BusinessStartHour: getEnvAsInt("BUSINESS_START_HOUR", 9),
		BusinessEndHour:   getEnvAsInt("BUSINESS_END_HOUR", 17),
		SlotMinutes:       getEnvAsInt("SLOT_MINUTES", 60),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "CodeBridge"),
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),

		FormRatePerSecond: getEnvAsFloat("FORM_RATE_PER_SECOND", 1),
		FormRateBurst:     getEnvAsInt("FORM_RATE_BURST", 5),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer
func getEnvAsInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
