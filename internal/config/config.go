package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	LogLevel string
	Env      string

	// DataFile is the JSON document the default store persists to.
	// DatabaseURL, when set, switches persistence to Postgres instead.
	DataFile    string
	DatabaseURL string
}

func LoadConfig() (*Config, error) {
	// A local .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:        GetEnv("PORT", "8080"),
		DataFile:    GetEnv("DATA_FILE", "data.json"),
		DatabaseURL: GetEnv("DATABASE_URL", ""),
		Env:         GetEnv("ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
