package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SHOPIFY_CLIENT_ID", "client-id")
	t.Setenv("SHOPIFY_CLIENT_SECRET", "client-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "2024-01", cfg.Shopify.APIVersion)
	assert.Equal(t, "read_orders,read_products", cfg.Shopify.Scopes)
	assert.Equal(t, 30*time.Second, cfg.Shopify.HTTPTimeout)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, 5000, cfg.Export.OrderSafetyCap)
	assert.Equal(t, 2000, cfg.Export.ProductSafetyCap)
	assert.Equal(t, 250, cfg.Export.PageLimit)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("SHOPIFY_CLIENT_ID", "")
	t.Setenv("SHOPIFY_CLIENT_SECRET", "")
	os.Unsetenv("SHOPIFY_CLIENT_ID")
	os.Unsetenv("SHOPIFY_CLIENT_SECRET")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_TrimsAppURL(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_URL", "https://export.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://export.example.com", cfg.AppURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "etcd" }, "unknown TOKEN_STORE"},
		{"postgres without url", func(c *Config) { c.Store.Backend = StorePostgres }, "DATABASE_URL"},
		{"page limit too large", func(c *Config) { c.Export.PageLimit = 500 }, "PAGE_LIMIT"},
		{"zero cap", func(c *Config) { c.Export.OrderSafetyCap = 0 }, "safety caps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Store:  StoreConfig{Backend: StoreMemory},
				Export: ExportConfig{OrderSafetyCap: 5000, ProductSafetyCap: 2000, PageLimit: 250},
			}
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
