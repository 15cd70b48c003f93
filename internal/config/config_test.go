// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Catalog.PageSize)
	assert.Equal(t, 0.05, cfg.Pricing.TaxRate)
	assert.Equal(t, int64(2999), cfg.Pricing.FreeShippingMin)
	assert.Equal(t, int64(149), cfg.Pricing.FlatShippingFee)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_PAGE_SIZE", "12")
	t.Setenv("PRICING_TAX_RATE", "0.18")
	t.Setenv("SERVER_READ_TIMEOUT", "15s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, 0.18, cfg.Pricing.TaxRate)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadIgnoresMalformedEnvironment(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "a lot")
	t.Setenv("PRICING_TAX_RATE", "five percent")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Catalog.PageSize)
	assert.Equal(t, 0.05, cfg.Pricing.TaxRate)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "DB_HOST"},
		{"missing redis host", func(c *Config) { c.Redis.Host = "" }, "REDIS_HOST"},
		{"zero page size", func(c *Config) { c.Catalog.PageSize = 0 }, "CATALOG_PAGE_SIZE"},
		{"tax rate out of range", func(c *Config) { c.Pricing.TaxRate = 1.5 }, "PRICING_TAX_RATE"},
		{"negative shipping fee", func(c *Config) { c.Pricing.FlatShippingFee = -1 }, "PRICING_FLAT_SHIPPING_FEE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConnectionStrings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=localhost port=5432 user=urbanwear_user password=urbanwear_password dbname=urbanwear_db sslmode=disable", cfg.GetDatabaseDSN())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
