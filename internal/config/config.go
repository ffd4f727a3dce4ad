package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	CountryCode    string `env:"COUNTRY_CODE" envDefault:"US"`
	IndicatorCode  string `env:"INDICATOR_CODE" envDefault:"NY.GDP.MKTP.CD"`
	StartYear      int    `env:"START_YEAR" envDefault:"2013"`
	EndYear        int    `env:"END_YEAR" envDefault:"2023"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"10"` // seconds
	RequestsPerSec int    `env:"REQUESTS_PER_SEC" envDefault:"5"`
	MaxRetries     int    `env:"MAX_RETRIES" envDefault:"0"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	OutputPath     string `env:"OUTPUT_PATH" envDefault:"chart.png"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	// Load values from environment variables
	cfg.CountryCode = getEnvWithDefault("COUNTRY_CODE", "US")
	cfg.IndicatorCode = getEnvWithDefault("INDICATOR_CODE", "NY.GDP.MKTP.CD")
	cfg.StartYear = getEnvIntWithDefault("START_YEAR", 2013)
	cfg.EndYear = getEnvIntWithDefault("END_YEAR", 2023)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 10)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)
	cfg.MaxRetries = getEnvIntWithDefault("MAX_RETRIES", 0)
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.OutputPath = getEnvWithDefault("OUTPUT_PATH", "chart.png")

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
