package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// Reconciliation
	MatchTolerance decimal.Decimal
	AgingPolicy    accounting.AgingPolicy

	// Edge
	RateLimit          string `mapstructure:"RATE_LIMIT"` // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
	PosthogAPIKey      string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "ap-reconciliation-app")
	viper.SetDefault("MATCH_TOLERANCE", "0.02")
	viper.SetDefault("AGING_BUCKET_DAYS", "30,60,90")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	tolerance, err := decimal.NewFromString(strings.TrimSpace(viper.GetString("MATCH_TOLERANCE")))
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_TOLERANCE: %w", err)
	}
	if err := accounting.ValidateTolerance(tolerance); err != nil {
		return nil, fmt.Errorf("invalid MATCH_TOLERANCE: %w", err)
	}

	policy, err := accounting.ParseAgingPolicy(viper.GetString("AGING_BUCKET_DAYS"))
	if err != nil {
		return nil, fmt.Errorf("invalid AGING_BUCKET_DAYS: %w", err)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.MatchTolerance = tolerance
	cfg.AgingPolicy = policy
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
