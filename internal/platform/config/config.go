package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	StorageDriver string
	// MigrationsPath is a migrate source URL; empty uses the embedded migrations.
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RedisURL          string
	StatementCacheTTL time.Duration

	RateLimit          string
	CORSAllowedOrigins []string

	// RequirePeriodCoverage rejects postings dated outside every fiscal period.
	RequirePeriodCoverage bool
	// ManualApprovalRequired stores manual journals PENDING_APPROVAL.
	ManualApprovalRequired bool
	// PostingAccounts maps posting roles to account codes.
	PostingAccounts domain.PostingAccounts
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "ledger-core")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("STATEMENT_CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LEDGER_REQUIRE_PERIOD_COVERAGE", false)
	v.SetDefault("LEDGER_MANUAL_APPROVAL_REQUIRED", false)
	for _, e := range domain.DefaultChart {
		v.SetDefault("LEDGER_ACCOUNT_"+string(e.Role), e.Code)
	}

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            v.GetString("PGSQL_URL"),
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:          strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MigrationsPath:         v.GetString("MIGRATIONS_PATH"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTIssuer:              v.GetString("JWT_ISSUER"),
		RedisURL:               v.GetString("REDIS_URL"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		RequirePeriodCoverage:  v.GetBool("LEDGER_REQUIRE_PERIOD_COVERAGE"),
		ManualApprovalRequired: v.GetBool("LEDGER_MANUAL_APPROVAL_REQUIRED"),
		PostingAccounts:        make(domain.PostingAccounts, len(domain.DefaultChart)),
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q, expected %s or %s", cfg.StorageDriver, StoragePostgres, StorageMemory)
	}

	ttlStr := v.GetString("STATEMENT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 10 * time.Minute
		log.Printf("Warning: Invalid value for STATEMENT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.StatementCacheTTL = ttl

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	for _, e := range domain.DefaultChart {
		cfg.PostingAccounts[e.Role] = v.GetString("LEDGER_ACCOUNT_" + string(e.Role))
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}
