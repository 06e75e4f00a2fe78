package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yeremiapane/storefront-api/utils"
)

type Config struct {
	AppPort         string        `mapstructure:"APP_PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DBDSN           string        `mapstructure:"DB_DSN"`
	DBMaxOpenConns  int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns  int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnLifetime  time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBSlowThreshold time.Duration `mapstructure:"DB_SLOW_THRESHOLD"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	SeedData        bool          `mapstructure:"SEED_DATA"`
	CORSOrigins     string        `mapstructure:"CORS_ALLOW_ORIGINS"`
	RateLimitRPS    float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int           `mapstructure:"RATE_LIMIT_BURST"`
	SwaggerEnabled  bool          `mapstructure:"SWAGGER_ENABLED"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"APP_PORT":             "8080",
	"GIN_MODE":             "debug",
	"DB_DRIVER":            "sqlite",
	"DB_DSN":               "storefront.db",
	"DB_MAX_OPEN_CONNS":    25,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "30m",
	"DB_SLOW_THRESHOLD":    "200ms",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
	"SEED_DATA":            true,
	"CORS_ALLOW_ORIGINS":   "*",
	"RATE_LIMIT_RPS":       50,
	"RATE_LIMIT_BURST":     100,
	"SWAGGER_ENABLED":      true,
	"SHUTDOWN_TIMEOUT":     "10s",
}

// Load reads the optional .env files, then the process environment.
// Environment variables win over .env values, which win over defaults.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		utils.InfoLogger.Warnf("Warning: .env file could not be loaded: %v", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	return cfg, nil
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
