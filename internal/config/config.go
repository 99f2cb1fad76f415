package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	OpenTDBURL string
	LogMode    string
}

// Load reads an optional .env file and resolves settings from the
// environment. A missing .env is fine; missing keys fall back to defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:     getEnv("TRIVIA_DB_PATH", "trivia.db"),
		OpenTDBURL: getEnv("OPENTDB_BASE_URL", "https://opentdb.com/api.php"),
		LogMode:    getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
