// Package config reads service settings from the environment. A .env file in
// the working directory is loaded first by the godotenv autoload import in
// cmd/api.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"funeral_quote/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	CatalogSourceYAML   = "yaml"
	CatalogSourceDynamo = "dynamodb"

	EstimateStoreDynamo   = "dynamodb"
	EstimateStorePostgres = "postgres"
)

type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	CatalogSource string
	CatalogFile   string
	EstimateStore string
	DatabaseURL   string
	RedisURL      string

	Tax pricing.TaxPolicy

	SessionTTL        time.Duration
	SessionMaxEntries int
}

// Load returns the configuration or the first invalid setting.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		LogFormat:     getenvDefault("LOG_FORMAT", "text"),
		CatalogSource: strings.ToLower(getenvDefault("CATALOG_SOURCE", CatalogSourceYAML)),
		CatalogFile:   getenvDefault("CATALOG_FILE", "configs/catalog.yaml"),
		EstimateStore: strings.ToLower(getenvDefault("ESTIMATE_STORE", EstimateStoreDynamo)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.SessionMaxEntries, err = getenvInt("SESSION_MAX_ENTRIES", 10000); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = time.ParseDuration(getenvDefault("SESSION_TTL", "2h")); err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
	}

	switch cfg.CatalogSource {
	case CatalogSourceYAML, CatalogSourceDynamo:
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE: unknown source %q", cfg.CatalogSource)
	}
	switch cfg.EstimateStore {
	case EstimateStoreDynamo:
	case EstimateStorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when ESTIMATE_STORE=%s", EstimateStorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("ESTIMATE_STORE: unknown store %q", cfg.EstimateStore)
	}

	if cfg.Tax, err = TaxPolicyFromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TaxPolicyFromEnv builds the tax policy from TAX_RATE, TAX_EXEMPTION_MODE and
// NON_TAXABLE_ITEMS (comma separated item names). Unset values keep the
// defaults.
func TaxPolicyFromEnv() (pricing.TaxPolicy, error) {
	policy := pricing.DefaultTaxPolicy()

	if v := strings.TrimSpace(os.Getenv("TAX_RATE")); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return pricing.TaxPolicy{}, fmt.Errorf("TAX_RATE: %w", err)
		}
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return pricing.TaxPolicy{}, fmt.Errorf("TAX_RATE: %s is outside [0, 1]", v)
		}
		policy.Rate = rate
	}

	switch mode := pricing.ExemptionMode(strings.ToLower(strings.TrimSpace(os.Getenv("TAX_EXEMPTION_MODE")))); mode {
	case "":
	case pricing.ExemptByName, pricing.ExemptByFlag:
		policy.Mode = mode
	default:
		return pricing.TaxPolicy{}, fmt.Errorf("TAX_EXEMPTION_MODE: unknown mode %q", mode)
	}

	if v, ok := os.LookupEnv("NON_TAXABLE_ITEMS"); ok {
		policy.NonTaxableNames = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				policy.NonTaxableNames = append(policy.NonTaxableNames, name)
			}
		}
	}
	return policy, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
