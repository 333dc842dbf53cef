package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "whatsapp_outbound", cfg.RabbitMQ.WhatsAppQueue)
	assert.Equal(t, 5*time.Minute, cfg.Campaign.Tolerance)
	assert.Equal(t, 100, cfg.Campaign.BatchSize)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CAMPAIGN_TOLERANCE_MINUTES", "10")
	t.Setenv("REPORT_RECIPIENTS", "a@x.com, ,b@x.com")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CAMPAIGN_RATE_PER_SECOND", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Campaign.Tolerance)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, cfg.SMTP.ReportRecipients)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2.5, cfg.Campaign.RatePerSecond)
}

func TestLoad_BatchSizeInvalido(t *testing.T) {
	t.Setenv("CAMPAIGN_BATCH_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/x?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{Timezone: "No/Existe"}.Location())
	assert.Equal(t, "America/Argentina/Buenos_Aires", AppConfig{Timezone: "America/Argentina/Buenos_Aires"}.Location().String())
}
