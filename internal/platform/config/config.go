package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	AppName       string
	DatabaseURL   string
	Port          string
	IsProduction  bool
	StorageDriver string

	MigrationsPath string
	RunMigrations  bool

	// FrontendOrigin is allowed by CORS in addition to the local dev origins.
	FrontendOrigin string
	// RateLimit uses the ulule/limiter formatted rate, e.g. "100-M". Empty disables it.
	RateLimit string

	DefaultCurrency string

	PosthogAPIKey   string
	PosthogEndpoint string
	MetricsEnabled  bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_NAME", "personal-os")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("FRONTEND_ORIGIN", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DEFAULT_CURRENCY", "INR")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.AutomaticEnv()

	cfg := &Config{
		AppName:         v.GetString("APP_NAME"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		StorageDriver:   strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		FrontendOrigin:  strings.TrimRight(v.GetString("FRONTEND_ORIGIN"), "/"),
		RateLimit:       strings.TrimSpace(v.GetString("RATE_LIMIT")),
		DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY"))),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
		MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "INR"
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Product analytics disabled.")
	}

	return cfg, nil
}
