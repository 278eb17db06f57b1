package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	GoEnv           string
	DBEngine        string // "postgres" or "sqlite"
	DatabaseURL     string // postgres DSN
	SQLitePath      string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	UploadDir       string
	LogLevel        string
	Seed            bool
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// Fall back to plain .env; deployed environments set variables
		// directly, so a missing file is fine.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GoEnv:           env,
		DBEngine:        getEnv("DB_ENGINE", "sqlite"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "eatupnow.db"),
		JWTSecret:       getEnv("JWT_SECRET", "eatupnow_dev_secret"),
		AccessTokenTTL:  getDurationEnv("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: getDurationEnv("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Seed:            getBoolEnv("SEED", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.DBEngine {
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_ENGINE=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_ENGINE=sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_ENGINE %q (want postgres or sqlite)", c.DBEngine)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
