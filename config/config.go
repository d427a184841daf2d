package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says we are past development
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil {
			// Missing .env is fine when variables come from the environment
			if !os.IsNotExist(err) {
				return err
			}
		}
	}

	return nil
}

// Storage drivers for uploaded files
const (
	StorageDriverLocal  = "local"
	StorageDriverSpaces = "spaces"
)

type EnvironmentVariable struct {
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// JWT Configuration
	JWT_SECRET string
	JWT_ISSUER string
	// Registration gate
	ALLOWED_EMAIL_DOMAIN string
	// CORS
	ALLOWED_ORIGINS string
	// File storage
	STORAGE_DRIVER string
	UPLOAD_DIR     string
	SPACES_KEY     string
	SPACES_SECRET  string
	SPACES_BUCKET  string
	SPACES_REGION  string
	SPACES_ENDPOINT string
	SPACES_CDN_URL string
	// Redis (brute-force protection)
	REDIS_URL string
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Get() (*EnvironmentVariable, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 4000
	}

	envVariables := &EnvironmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      getEnvDefault("DB_HOST", "localhost"),
		DB_PORT:      getEnvDefault("DB_PORT", "5432"),
		DB_SSL_MODE:  getEnvDefault("DB_SSL_MODE", "disable"),
		PORT:         port,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: getEnvDefault("JWT_ISSUER", "unishare-api"),
		// Registration gate
		ALLOWED_EMAIL_DOMAIN: getEnvDefault("ALLOWED_EMAIL_DOMAIN", "@ulima.edu.pe"),
		// CORS
		ALLOWED_ORIGINS: getEnvDefault("ALLOWED_ORIGINS", "http://localhost:5173"),
		// File storage
		STORAGE_DRIVER:  getEnvDefault("STORAGE_DRIVER", StorageDriverLocal),
		UPLOAD_DIR:      getEnvDefault("UPLOAD_DIR", "./uploads"),
		SPACES_KEY:      os.Getenv("SPACES_KEY"),
		SPACES_SECRET:   os.Getenv("SPACES_SECRET"),
		SPACES_BUCKET:   os.Getenv("SPACES_BUCKET"),
		SPACES_REGION:   os.Getenv("SPACES_REGION"),
		SPACES_ENDPOINT: os.Getenv("SPACES_ENDPOINT"),
		SPACES_CDN_URL:  os.Getenv("SPACES_CDN_URL"),
		// Redis
		REDIS_URL: os.Getenv("REDIS_URL"),
	}

	return envVariables, nil
}
