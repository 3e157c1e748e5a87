package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	SessionSecret string

	ResetTokenSecret string
	ResetTokenTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	BaseURL      string

	EquationsPerPage int
	MessagesPerPage  int

	GinMode string
}

func Load() *Config {
	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "mathfeed"),
		DBPassword: getEnv("DB_PASSWORD", "mathfeed"),
		DBName:     getEnv("DB_NAME", "mathfeed"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),

		ResetTokenSecret: getEnv("RESET_TOKEN_SECRET", "default-reset-secret-change-me"),
		ResetTokenTTL:    time.Duration(getEnvInt("RESET_TOKEN_TTL_SECONDS", 600)) * time.Second,

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@mathfeed.local"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),

		EquationsPerPage: getEnvInt("EQUATIONS_PER_PAGE", 25),
		MessagesPerPage:  getEnvInt("MESSAGES_PER_PAGE", 25),

		GinMode: getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
