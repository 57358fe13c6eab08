package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// wordpress upstream
	WordPressAPIURL        string `toml:"wordpress_api_url"`
	WordPressDefaultAuthor string `toml:"wordpress_default_author"`
	PostsCacheTTLMinutes   int    `toml:"posts_cache_ttl_minutes"`
	FetchAttempts          int    `toml:"fetch_attempts"`
	FetchRetryDelaySeconds int    `toml:"fetch_retry_delay_seconds"`
	FetchTimeoutSeconds    int    `toml:"fetch_timeout_seconds"`

	// blog api
	DefaultPageSize            int `toml:"default_page_size"`
	BlogRateLimitAllowedPerMin int `toml:"blog_rate_limit_allowed_per_min"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.PostsCacheTTLMinutes <= 0 {
		c.PostsCacheTTLMinutes = 5
	}
	if c.FetchAttempts <= 0 {
		c.FetchAttempts = 3
	}
	if c.FetchRetryDelaySeconds <= 0 {
		c.FetchRetryDelaySeconds = 1
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = 10
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 10
	}
	if c.BlogRateLimitAllowedPerMin <= 0 {
		c.BlogRateLimitAllowedPerMin = 120
	}
	if c.WordPressDefaultAuthor == "" {
		c.WordPressDefaultAuthor = "Nikola Milenkovic"
	}
}
