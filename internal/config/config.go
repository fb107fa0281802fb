package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment, apart from
// provider credentials which the provider packages read themselves.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	Provider  string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		MongoURI:  os.Getenv("MONGODB_URL"),
		DBName:    getEnvOrDefault("DATABASE_NAME", "interviewprep"),
		JWTSecret: getEnvOrDefault("JWT_SECRET", "dev"),
		Provider:  getEnvOrDefault("AI_PROVIDER", "gemini"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.MongoURI == "" {
		return errors.New("MONGODB_URL environment variable is required")
	}
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
