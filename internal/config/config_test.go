package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dashboard/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "SAR", cfg.DefaultCurrency)
	assert.Equal(t, "activity_logs", cfg.ActivityQueue)
	assert.InDelta(t, 3.75, cfg.CurrencyRates["SAR"], 1e-9)
	assert.False(t, cfg.ImageHostConfigured())
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DB_DRIVER", "oracle")

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestFromViper_RequiresRateForDefaultCurrency(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DEFAULT_CURRENCY", "xyz")

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "XYZ")
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := []byte("APP_PORT: \":9090\"\nDB_DRIVER: sqlite\nCURRENCY_RATES:\n  usd: 1\n  sar: 3.75\n  egp: 50\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.InDelta(t, 50.0, cfg.CurrencyRates["EGP"], 1e-9)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_CurrencyRatesFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CURRENCY_RATES", `{"sar":3.8,"USD":1,"EGP":49}`)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Len(t, cfg.CurrencyRates, 3)
	assert.InDelta(t, 3.8, cfg.CurrencyRates["SAR"], 1e-9)
	assert.InDelta(t, 49.0, cfg.CurrencyRates["EGP"], 1e-9)
}

func TestLoad_MalformedCurrencyRatesFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CURRENCY_RATES", "SAR=3.75")

	_, err := config.Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CURRENCY_RATES")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
