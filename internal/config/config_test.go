package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"GRPC_ADDR", "API_TOKEN", "DB_CONN_STR", "DB_HOST", "DB_PORT", "DB_NAME",
		"LOG_LEVEL", "LOG_PRETTY", "CURRENCY_CODE", "ANONYMIZE", "TIMEZONE", "WEEK_START", "DEMO_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "dev-token", cfg.Server.APIToken)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "USD", cfg.Display.CurrencyCode)
	assert.False(t, cfg.Display.Anonymize)
	assert.False(t, cfg.DemoMode)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=networth sslmode=disable", cfg.Database.DSN())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_CONN_STR", "postgres://u:p@db/networth")
	t.Setenv("CURRENCY_CODE", "eur")
	t.Setenv("ANONYMIZE", "true")
	t.Setenv("DEMO_MODE", "1")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("WEEK_START", "Sunday")
	t.Setenv("LOG_PRETTY", "not-a-bool")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db/networth", cfg.Database.DSN())
	assert.Equal(t, "EUR", cfg.Display.CurrencyCode)
	assert.True(t, cfg.Display.Anonymize)
	assert.True(t, cfg.DemoMode)
	assert.False(t, cfg.Log.Pretty, "unparsable booleans fall back to the default")

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	wd, err := cfg.Calendar.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Addr: "", APIToken: ""},
		Database: DatabaseConfig{Host: "localhost", Name: "networth", Port: "99999"},
		Display:  DisplayConfig{CurrencyCode: "XXXX"},
		Calendar: CalendarConfig{Timezone: "Mars/Olympus", WeekStart: "friday"},
	}

	err := cfg.Validate()

	require.Error(t, err)
	for _, want := range []string{
		"gRPC address cannot be empty",
		"API token cannot be empty",
		"invalid database port '99999'",
		"unknown currency code 'XXXX'",
		"invalid timezone 'Mars/Olympus'",
		"invalid week start 'friday'",
	} {
		assert.Contains(t, err.Error(), want)
	}
}
