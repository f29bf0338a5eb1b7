package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// SplitAccounts names the accounts that receive each leg of a sale's split.
type SplitAccounts struct {
	Vault   string
	Freight string
	Profit  string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	StoreDriver   string // "postgres" or "memory"
	LogLevel      string

	JWTSecret string
	JWTIssuer string

	LockTimeout        time.Duration // in-process per-key lock acquisition bound
	DBLockTimeout      time.Duration // SET LOCAL lock_timeout for row locks
	RecognitionMode    string        // "accrual" or "cash"
	DefaultFreightRate decimal.Decimal
	SplitAccounts      SplitAccounts
	CatalogFile        string

	RedisURL       string
	IdempotencyTTL time.Duration

	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORE_DRIVER", "postgres")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "treasury-ledger")
	viper.SetDefault("LOCK_TIMEOUT", "5s")
	viper.SetDefault("DB_LOCK_TIMEOUT", "3s")
	viper.SetDefault("SALE_RECOGNITION_MODE", "accrual")
	viper.SetDefault("DEFAULT_FREIGHT_RATE", "500")
	viper.SetDefault("SPLIT_VAULT_ACCOUNT", "boveda_monte")
	viper.SetDefault("SPLIT_FREIGHT_ACCOUNT", "flete_sur")
	viper.SetDefault("SPLIT_PROFIT_ACCOUNT", "utilidades")
	viper.SetDefault("ACCOUNT_CATALOG_FILE", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("IDEMPOTENCY_TTL", "24h")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.StoreDriver = strings.ToLower(viper.GetString("STORE_DRIVER"))
	if cfg.DatabaseURL == "" && cfg.StoreDriver == "postgres" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.StoreDriver != "postgres" && cfg.StoreDriver != "memory" {
		log.Printf("Warning: unknown STORE_DRIVER %q. Defaulting to postgres.\n", cfg.StoreDriver)
		cfg.StoreDriver = "postgres"
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.LockTimeout = durationOr("LOCK_TIMEOUT", 5*time.Second)
	cfg.DBLockTimeout = durationOr("DB_LOCK_TIMEOUT", 3*time.Second)
	cfg.IdempotencyTTL = durationOr("IDEMPOTENCY_TTL", 24*time.Hour)

	cfg.RecognitionMode = strings.ToLower(viper.GetString("SALE_RECOGNITION_MODE"))
	if cfg.RecognitionMode != "accrual" && cfg.RecognitionMode != "cash" {
		log.Printf("Warning: Invalid value for SALE_RECOGNITION_MODE ('%s'). Defaulting to accrual.\n", cfg.RecognitionMode)
		cfg.RecognitionMode = "accrual"
	}

	freightStr := viper.GetString("DEFAULT_FREIGHT_RATE")
	freight, err := decimal.NewFromString(freightStr)
	if err != nil || freight.IsNegative() {
		freight = decimal.NewFromInt(500)
		log.Printf("Warning: Invalid value for DEFAULT_FREIGHT_RATE ('%s'). Defaulting to %s.\n", freightStr, freight.String())
	}
	cfg.DefaultFreightRate = freight

	cfg.SplitAccounts = SplitAccounts{
		Vault:   viper.GetString("SPLIT_VAULT_ACCOUNT"),
		Freight: viper.GetString("SPLIT_FREIGHT_ACCOUNT"),
		Profit:  viper.GetString("SPLIT_PROFIT_ACCOUNT"),
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.CatalogFile = viper.GetString("ACCOUNT_CATALOG_FILE")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
