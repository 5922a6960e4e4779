package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	DatabaseURL    string
	Port           string
	AllowedOrigins []string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		DatabaseURL: getEnvOrDefault("DATABASE_URL",
			"host=localhost port=5432 user=postgres password=postgres dbname=onlineshop sslmode=disable"),
		Port:           getEnvOrDefault("PORT", "9090"),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
