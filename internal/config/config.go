package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Token store backends
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Config is the process-wide configuration read from the environment
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppURL   string `env:"APP_URL" envDefault:"http://localhost:8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Shopify ShopifyConfig
	Store   StoreConfig
	Export  ExportConfig
}

// ShopifyConfig holds the confidential app credentials. It is passed explicitly to the
// components that need it and must never be logged.
type ShopifyConfig struct {
	ClientID           string        `env:"SHOPIFY_CLIENT_ID,required,notEmpty"`
	ClientSecret       string        `env:"SHOPIFY_CLIENT_SECRET,required,notEmpty"`
	Scopes             string        `env:"SHOPIFY_SCOPES" envDefault:"read_orders,read_products"`
	APIVersion         string        `env:"SHOPIFY_API_VERSION" envDefault:"2024-01"`
	HTTPTimeout        time.Duration `env:"SHOPIFY_HTTP_TIMEOUT" envDefault:"30s"`
	VerifyCallbackHMAC bool          `env:"VERIFY_CALLBACK_HMAC" envDefault:"false"`
}

// StoreConfig selects and configures the token store backend
type StoreConfig struct {
	Backend       string `env:"TOKEN_STORE" envDefault:"redis"`
	RedisURL      string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"course_export"`
	DatabaseURL   string `env:"DATABASE_URL"`
}

// ExportConfig bounds the paginated fetches
type ExportConfig struct {
	OrderSafetyCap   int `env:"ORDER_SAFETY_CAP" envDefault:"5000"`
	ProductSafetyCap int `env:"PRODUCT_SAFETY_CAP" envDefault:"2000"`
	PageLimit        int `env:"PAGE_LIMIT" envDefault:"250"`
}

// Load parses the environment into a Config and validates it.
// Callers load any .env file beforehand.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreRedis, StoreMongo:
	case StorePostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when TOKEN_STORE=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown TOKEN_STORE %q", c.Store.Backend)
	}

	if c.Export.PageLimit <= 0 || c.Export.PageLimit > 250 {
		return fmt.Errorf("PAGE_LIMIT must be between 1 and 250, got %d", c.Export.PageLimit)
	}
	if c.Export.OrderSafetyCap <= 0 || c.Export.ProductSafetyCap <= 0 {
		return fmt.Errorf("safety caps must be positive")
	}

	c.AppURL = strings.TrimRight(c.AppURL, "/")
	return nil
}
