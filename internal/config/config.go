package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host" env:"SERVER_HOST, overwrite"`
	Port        int    `toml:"port" env:"SERVER_PORT, overwrite"`

	// logging
	LogLevel      string `toml:"log_level" env:"LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost           string        `toml:"postgres_host" env:"DATABASE_HOST, overwrite"`
	PostgresPort           string        `toml:"postgres_port" env:"DATABASE_PORT, overwrite"`
	PostgresUser           string        `toml:"postgres_user" env:"DATABASE_USER, overwrite"`
	PostgresPassword       string        `toml:"postgres_password" env:"DATABASE_PASSWORD, overwrite"`
	PostgresDBName         string        `toml:"postgres_db_name" env:"DATABASE_NAME, overwrite"`
	PostgresSchema         string        `toml:"postgres_schema" env:"DATABASE_SCHEMA, overwrite"`
	PostgresMaxConns       int32         `toml:"postgres_max_conns"`
	PostgresAcquireTimeout time.Duration `toml:"postgres_acquire_timeout"`

	// redis
	RedisHost     string `toml:"redis_host" env:"REDIS_HOST, overwrite"`
	RedisPort     string `toml:"redis_port" env:"REDIS_PORT, overwrite"`
	RedisPassword string `toml:"redis_password" env:"REDIS_PASSWORD, overwrite"`

	// auth
	JWTSecret                   string        `toml:"jwt_secret" env:"FITTRACK_JWT_SECRET, overwrite"`
	TokenTTL                    time.Duration `toml:"token_ttl"`
	CookieSecure                bool          `toml:"cookie_secure"`
	PasswordHashCost            int           `toml:"password_hash_cost"`
	LoginRateLimitAllowedPerMin int           `toml:"login_rate_limit_allowed_per_min"`

	// catalog cache
	CatalogCacheSizeBytes int `toml:"catalog_cache_size_bytes"`
	CatalogCacheTTLSec    int `toml:"catalog_cache_ttl_sec"`

	// telemetry
	PrometheusMetricsHost   string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort   string `toml:"prometheus_metrics_port"`
	HoneycombTracingEnabled bool   `toml:"honeycomb_tracing_enabled" env:"HONEYCOMB_ENABLED, overwrite"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return &Config{Environment: "development"}, nil
		}
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return &Config{Environment: "production"}, nil
		}
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file (a missing file is fine), picks the env section and
// lets environment variables override it.
func Load(env, path string) (*Config, error) {
	return load(env, path, envconfig.OsLookuper())
}

func load(env, path string, lookuper envconfig.Lookuper) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.PostgresHost == "" {
		c.PostgresHost = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "fittrack"
	}
	if c.PostgresSchema == "" {
		c.PostgresSchema = "fittrack"
	}
	if c.PostgresAcquireTimeout <= 0 {
		c.PostgresAcquireTimeout = 5 * time.Second
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.CatalogCacheSizeBytes <= 0 {
		c.CatalogCacheSizeBytes = 8 * 1024 * 1024
	}
	if c.CatalogCacheTTLSec <= 0 {
		c.CatalogCacheTTLSec = 300
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "9091"
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Port)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret not set, use FITTRACK_JWT_SECRET")
	}
	return nil
}
