package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.EqualValues(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.DB.LockTimeout)
	assert.Equal(t, "none", cfg.DB.QueryLog)
	assert.Equal(t, "@hourly", cfg.Alerts.Schedule)
	assert.Equal(t, 30, cfg.Alerts.ExpiringDays)
	assert.True(t, cfg.Alerts.RunOnStart)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("ALERTS_SCHEDULE", "@every 10m")
	t.Setenv("ALERTS_EXPIRING_DAYS", "15")
	t.Setenv("ALERTS_RUN_ON_START", "false")
	t.Setenv("ALERTS_LOCATION", "UTC")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, "@every 10m", cfg.Alerts.Schedule)
	assert.Equal(t, 15, cfg.Alerts.ExpiringDays)
	assert.False(t, cfg.Alerts.RunOnStart)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	loc, err := cfg.Alerts.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("DB_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("ALERTS_LOCATION", "Marte/Olympus")
	_, err = Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "donaciones", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/donaciones?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
