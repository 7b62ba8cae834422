package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		App: AppConfig{
			BaseURL:         "https://fund.example.edu",
			StoreDriver:     DriverSupabase,
			StorageDriver:   DriverSupabase,
			PaymentProvider: ProviderStripe,
		},
		Supabase: SupabaseConfig{URL: "https://x.supabase.co", APIKey: "anon"},
		Stripe:   StripeConfig{SecretKey: "sk_test_123"},
		Auth:     AuthConfig{JWTSecret: "secret"},
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "usd", cfg.App.Currency)
	assert.Equal(t, DriverSupabase, cfg.App.StoreDriver)
	assert.Equal(t, ProviderStripe, cfg.App.PaymentProvider)
	assert.Equal(t, 15*time.Second, cfg.Supabase.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.edu,https://b.edu")
	t.Setenv("APP_PAYMENT_PROVIDER", "mercadopago")
	t.Setenv("APP_CURRENCY", "ars")
	t.Setenv("MP_ACCESS_TOKEN", "TEST-123")
	t.Setenv("MP_SANDBOX", "true")
	t.Setenv("PSQL_MAX_CONNS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.Server.Port)
	assert.Equal(t, []string{"https://a.edu", "https://b.edu"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderMercadoPago, cfg.App.PaymentProvider)
	assert.Equal(t, "ars", cfg.App.Currency)
	assert.Equal(t, "TEST-123", cfg.MercadoPago.AccessToken)
	assert.True(t, cfg.MercadoPago.Sandbox)
	assert.Equal(t, int32(4), cfg.Postgres.MaxConns)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing supabase", func(c *Config) { c.Supabase.URL = "" }, "SUPABASE_URL"},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, "AUTH_JWT_SECRET"},
		{"stripe without key", func(c *Config) { c.Stripe.SecretKey = "" }, "STRIPE_SECRET_KEY"},
		{"mercadopago without token", func(c *Config) { c.App.PaymentProvider = ProviderMercadoPago }, "MP_ACCESS_TOKEN"},
		{"unknown provider", func(c *Config) { c.App.PaymentProvider = "paypal" }, "APP_PAYMENT_PROVIDER"},
		{"unknown store", func(c *Config) { c.App.StoreDriver = "mongo" }, "APP_STORE_DRIVER"},
		{"cloudinary without credentials", func(c *Config) { c.App.StorageDriver = DriverCloudinary }, "CLOUDINARY_CLOUD_NAME"},
		{"unknown storage", func(c *Config) { c.App.StorageDriver = "s3" }, "APP_STORAGE_DRIVER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Stripe.SecretKey = ""
	cfg.Auth.JWTSecret = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "verbose"}.SlogLevel())
}
