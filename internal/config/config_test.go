package config_test

import (
	"testing"
	"time"

	"github.com/mmnete/bimasoft-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 5, cfg.DB.MaxRetries)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval)
	assert.Equal(t, "local", cfg.Identity.Provider)
	assert.Equal(t, "host=db user=postgres password=secret dbname=bimasoft port=5432 sslmode=disable", cfg.DSN())
}

func TestParse_Validation(t *testing.T) {
	t.Run("unknown identity provider", func(t *testing.T) {
		t.Setenv("IDENTITY_PROVIDER", "firebase")

		_, err := config.Parse()
		assert.ErrorContains(t, err, "IDENTITY_PROVIDER")
	})

	t.Run("production requires api key", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "s")

		_, err := config.Parse()
		assert.ErrorContains(t, err, "API_KEY")
	})
}

func TestConfig_LoginURL(t *testing.T) {
	cfg := &config.Config{App: config.App{BaseURL: "https://app.bimasoft.co.tz/"}}

	assert.Equal(t, "https://app.bimasoft.co.tz/authentication/login", cfg.LoginURL())
}
