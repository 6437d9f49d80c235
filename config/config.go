package config

import "os"

type Config struct {
	Port        string
	JWTSecret   string
	AdminAPIKey string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "petcare-dev-secret"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", "petcare-admin-key"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
