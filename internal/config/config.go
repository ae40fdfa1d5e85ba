package config

import (
	"os"
	"strings"
)

type Config struct {
	Mongo   MongoConfig
	JWT     JWTConfig
	SMTP    SMTPConfig
	GinMode string
}

type MongoConfig struct {
	URL    string
	DBName string
}

type JWTConfig struct {
	Secret string
	Expiry string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Email    string
	Password string
}

func New() *Config {
	return &Config{
		Mongo: MongoConfig{
			URL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "hayvanpazari"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "hayvan-pazari-secret-key-2025"),
			Expiry: getEnv("JWT_EXPIRY", "168h"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			Email:    getEnv("SMTP_EMAIL", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		GinMode: getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) GetCORSOrigins() []string {
	origins := getEnv("CORS_ORIGINS", "*")
	return strings.Split(origins, ",")
}
