package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	S3_ENDPOINT          string
	S3_ACCESS_KEY_ID     string
	S3_SECRET_ACCESS_KEY string
	S3_BUCKET            string
	S3_PUBLIC_BASE_URL   string

	CONTACT_TO string
)

// LoadEnv resolves all configuration at process start. Required variables
// abort startup when missing so a misconfigured deploy fails immediately
// instead of on the first request.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	S3_ENDPOINT = mustEnv("S3_ENDPOINT")
	S3_ACCESS_KEY_ID = mustEnv("S3_ACCESS_KEY_ID")
	S3_SECRET_ACCESS_KEY = mustEnv("S3_SECRET_ACCESS_KEY")
	S3_BUCKET = getEnv("S3_BUCKET", "portfolio-images")
	S3_PUBLIC_BASE_URL = mustEnv("S3_PUBLIC_BASE_URL")

	CONTACT_TO = mustEnv("CONTACT_TO")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
