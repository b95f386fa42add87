package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// Single allow-listed cross-origin caller (the deployed front-end)
	CORSAllowOrigin string

	// Email (Amazon SES); empty SESFromEmail disables the email service
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:     getEnv("DB_URL", ""),
		DatabasePath:    getEnv("DB_PATH", "./lesenhoeren.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "https://ulisesxxxi31.github.io"),
		AWSRegion:       getEnv("AWS_REGION", "eu-central-1"),
		SESFromEmail:    getEnv("SES_FROM_EMAIL", ""),
		SESFromName:     getEnv("SES_FROM_NAME", "Lesen & Hören"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
