package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAllowedOrigin = "http://localhost:3000"

type Settings struct {
	Port            string        `validate:"required,numeric"`
	DatabaseDSN     string        `validate:"required"`
	AllowedOrigin   string        `validate:"required,url"`
	TimeZone        string        `validate:"required"`
	SeedOnStart     bool
	MaxOpenConns    int           `validate:"gt=0"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// LoadEnv reads a .env file when one exists; the process environment wins otherwise.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("No .env file found, using system environment")
		return
	}
	Logger.Info(".env file loaded")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := GetEnv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid %s, using %d", key, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := GetEnv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		Logger.WithError(err).Warnf("Invalid %s, using %t", key, defaultValue)
		return defaultValue
	}
	return v
}

func Load() (*Settings, error) {
	lifetime, err := time.ParseDuration(GetEnv("DB_CONN_MAX_LIFETIME", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	s := &Settings{
		Port:            GetEnv("PORT", "8080"),
		DatabaseDSN:     GetEnv("DATABASE_DSN"),
		AllowedOrigin:   GetEnv("CORS_ALLOWED_ORIGIN", DefaultAllowedOrigin),
		TimeZone:        GetEnv("APP_TIMEZONE", "Local"),
		SeedOnStart:     getEnvBool("SEED_ON_START", true),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: lifetime,
	}

	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}
