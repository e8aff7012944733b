package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool
	JWTSecret     string
	LogLevel      string
	LogFormat     string

	// Currency engine
	BaseCurrency           string
	DisplayLocale          string
	ConversionHistoryLimit int

	// External providers. An empty URL disables the provider.
	RateProviderURL          string
	CatalogProviderURL       string
	ConversionProviderURL    string
	ProviderTimeout          time.Duration
	RateRefreshInterval      time.Duration
	RateFetchMaxElapsed      time.Duration
	AuthoritativeConcurrency int

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("DISPLAY_LOCALE", "en-US")
	v.SetDefault("CONVERSION_HISTORY_LIMIT", 100)
	v.SetDefault("RATE_PROVIDER_URL", "")
	v.SetDefault("CATALOG_PROVIDER_URL", "")
	v.SetDefault("CONVERSION_PROVIDER_URL", "")
	v.SetDefault("PROVIDER_TIMEOUT", "5s")
	v.SetDefault("RATE_REFRESH_INTERVAL", "1h")
	v.SetDefault("RATE_FETCH_MAX_ELAPSED", "30s")
	v.SetDefault("AUTHORITATIVE_CONCURRENCY", 4)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		DatabaseURL:              v.GetString("PGSQL_URL"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:            v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:                v.GetString("JWT_SECRET"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
		LogFormat:                v.GetString("LOG_FORMAT"),
		BaseCurrency:             strings.ToUpper(v.GetString("BASE_CURRENCY")),
		DisplayLocale:            v.GetString("DISPLAY_LOCALE"),
		ConversionHistoryLimit:   v.GetInt("CONVERSION_HISTORY_LIMIT"),
		RateProviderURL:          v.GetString("RATE_PROVIDER_URL"),
		CatalogProviderURL:       v.GetString("CATALOG_PROVIDER_URL"),
		ConversionProviderURL:    v.GetString("CONVERSION_PROVIDER_URL"),
		AuthoritativeConcurrency: v.GetInt("AUTHORITATIVE_CONCURRENCY"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	cfg.ProviderTimeout = durationOrDefault(v, "PROVIDER_TIMEOUT", 5*time.Second)
	cfg.RateRefreshInterval = durationOrDefault(v, "RATE_REFRESH_INTERVAL", time.Hour)
	cfg.RateFetchMaxElapsed = durationOrDefault(v, "RATE_FETCH_MAX_ELAPSED", 30*time.Second)

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Journals and rate snapshots will not be persisted.")
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "USD"
	}
	if cfg.ConversionHistoryLimit <= 0 {
		cfg.ConversionHistoryLimit = 100
	}
	if cfg.AuthoritativeConcurrency <= 0 {
		cfg.AuthoritativeConcurrency = 1
	}
	if cfg.RateProviderURL == "" {
		log.Println("Warning: RATE_PROVIDER_URL not set. Rates must be installed through the API.")
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
