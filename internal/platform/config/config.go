package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "KOKKO"

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	DB        DBConfig
	Redis     RedisConfig
	Charts    ChartsConfig
	Inventory InventoryConfig
}

type AppConfig struct {
	Env         string `envconfig:"KOKKO_APP_ENV" default:"dev"`
	LogLevel    string `envconfig:"KOKKO_LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"KOKKO_LOG_FORMAT" default:"json"`
	AutoMigrate bool   `envconfig:"KOKKO_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

type HTTPConfig struct {
	Port            string        `envconfig:"KOKKO_HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"KOKKO_HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
}

func (h HTTPConfig) Addr() string {
	return ":" + strings.TrimPrefix(h.Port, ":")
}

type DBConfig struct {
	DSN             string        `envconfig:"KOKKO_DB_DSN" required:"true"`
	MaxOpenConns    int           `envconfig:"KOKKO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KOKKO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KOKKO_DB_CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	URL string `envconfig:"KOKKO_REDIS_URL"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type ChartsConfig struct {
	TimeZone string        `envconfig:"KOKKO_TIME_ZONE" default:"Asia/Tokyo"`
	CacheTTL time.Duration `envconfig:"KOKKO_CHART_CACHE_TTL" default:"30s"`
}

// Location resolves the zone used for bucketing and date-range parsing.
func (c ChartsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

type InventoryConfig struct {
	DefaultAlertThreshold int `envconfig:"KOKKO_DEFAULT_ALERT_THRESHOLD" default:"100"`
}

// Load reads an optional .env file and then the KOKKO_* environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Inventory.DefaultAlertThreshold < 0 {
		return nil, errors.New("default alert threshold must not be negative")
	}
	return &cfg, nil
}
