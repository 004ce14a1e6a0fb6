// Package config loads the dashboard's settings from defaults, an optional
// config file and the environment, in increasing order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the dashboard.
type Config struct {
	AppPort     string        `mapstructure:"APP_PORT"`
	DBDriver    string        `mapstructure:"DB_DRIVER"`
	DatabaseDSN string        `mapstructure:"DATABASE_DSN"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`

	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	ActivityQueue string `mapstructure:"ACTIVITY_QUEUE"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
	// CurrencyRates maps a currency code to units per US dollar.
	CurrencyRates map[string]float64 `mapstructure:"CURRENCY_RATES"`
}

var defaultRates = map[string]float64{
	"USD": 1,
	"SAR": 3.75,
	"AED": 3.6725,
	"KWD": 0.307,
	"QAR": 3.64,
	"BHD": 0.376,
	"OMR": 0.3845,
	"JOD": 0.709,
	"EGP": 48.5,
	"EUR": 0.92,
	"GBP": 0.79,
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=dashboard port=5432 sslmode=disable TimeZone=UTC")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("ACTIVITY_QUEUE", "activity_logs")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("DEFAULT_CURRENCY", "SAR")
	v.SetDefault("CURRENCY_RATES", defaultRates)
}

// Load reads the configuration. An explicit configFile must exist; without
// one, ./config.yaml is used when present.
func Load(configFile string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	// from the environment the rates arrive as a JSON object string
	if raw, ok := v.Get("CURRENCY_RATES").(string); ok {
		var rates map[string]float64
		if err := json.Unmarshal([]byte(raw), &rates); err != nil {
			return Config{}, fmt.Errorf("failed to parse CURRENCY_RATES: %w", err)
		}
		v.Set("CURRENCY_RATES", rates)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	// viper lower-cases map keys
	rates := make(map[string]float64, len(cfg.CurrencyRates))
	for code, rate := range cfg.CurrencyRates {
		rates[strings.ToUpper(code)] = rate
	}
	cfg.CurrencyRates = rates
	cfg.DefaultCurrency = strings.ToUpper(cfg.DefaultCurrency)
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if _, ok := c.CurrencyRates[c.DefaultCurrency]; !ok {
		return fmt.Errorf("no rate configured for DEFAULT_CURRENCY %s", c.DefaultCurrency)
	}
	return nil
}

// ImageHostConfigured reports whether all Cloudinary credentials are set.
func (c Config) ImageHostConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
