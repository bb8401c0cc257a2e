package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	ELEVENLABS_KEY   string
	ELEVENLABS_MODEL string
	UPLOADS_DIR      string

	// When true the bulk publicize sweep refuses to run while a
	// contest's submission window is still open.
	PUBLICIZE_REQUIRES_CLOSED_WINDOW bool
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	ELEVENLABS_KEY = getEnv("ELEVENLABS_KEY", "")
	ELEVENLABS_MODEL = getEnv("ELEVENLABS_MODEL", "eleven_flash_v2_5")
	UPLOADS_DIR = getEnv("UPLOADS_DIR", "uploads")

	PUBLICIZE_REQUIRES_CLOSED_WINDOW = getEnv("PUBLICIZE_REQUIRES_CLOSED_WINDOW", "false") == "true"
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
