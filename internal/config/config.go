package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/cache"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const DriverPostgres = "postgres"

type AppConfig struct {
	Port    string
	GinMode string

	// StorageDriver is one of memory, file, sqlite, redis or postgres.
	StorageDriver string
	DataPath      string
	LogDir        string

	Postgres repository.PostgresOptions
	Redis    cache.Options

	// RedisEnabled turns on the goal cache and the rate limiter.
	RedisEnabled bool

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	RateLimit  int
	RateWindow time.Duration

	// InsightsConfig points at an optional YAML file of insight thresholds.
	InsightsConfig string
}

// Load reads .env (when present) and the process environment.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	dataPath := getEnv("DATA_PATH", defaultDataPath())

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "72h"))
	if err != nil {
		return nil, fmt.Errorf("config: JWT_TTL: %w", err)
	}
	window, err := time.ParseDuration(getEnv("RATE_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("config: RATE_WINDOW: %w", err)
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "release"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", storage.DriverMemory)),
		DataPath:      dataPath,
		LogDir:        getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs")),
		Postgres: repository.PostgresOptions{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "streak_user"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "streak_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: cache.Options{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RedisEnabled:   getEnvBool("REDIS_ENABLED", false),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", "consistency-tracker"),
		JWTTTL:         ttl,
		RateLimit:      getEnvInt("RATE_LIMIT", 100),
		RateWindow:     window,
		InsightsConfig: getEnv("INSIGHTS_CONFIG", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StorageOptions maps the key-value drivers onto storage.Options.
func (c *AppConfig) StorageOptions() storage.Options {
	opts := storage.Options{
		Driver: c.StorageDriver,
		Redis:  storage.RedisOptions{Options: c.Redis},
	}
	switch c.StorageDriver {
	case storage.DriverFile:
		opts.Path = filepath.Join(c.DataPath, "streak.json")
	case storage.DriverSQLite:
		opts.Path = filepath.Join(c.DataPath, "streak.db")
	}
	return opts
}

func (c *AppConfig) validate() error {
	switch c.StorageDriver {
	case storage.DriverMemory, storage.DriverFile, storage.DriverSQLite, storage.DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("config: RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive")
	}
	return nil
}

func defaultDataPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".streak")
	}
	return ".streak"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
