package config

import (
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

// HTTPCfg holds settings of inbound http server
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTPSRedirect   bool          `env:"HTTP_HTTPS_REDIRECT" envDefault:"false"`
	SwaggerEnabled  bool          `env:"SWAGGER_ENABLED" envDefault:"false"`
}

// CollectorAuthCfg holds settings for bearer token attached to collector requests
type CollectorAuthCfg struct {
	PrivateKeyFile string        `env:"COLLECTOR_AUTH_JWT_PRIVATE_KEY_FILE" envDefault:""`
	Issuer         string        `env:"COLLECTOR_AUTH_JWT_ISSUER" envDefault:"customer-relay"`
	TimeToLive     time.Duration `env:"COLLECTOR_AUTH_JWT_TIME_TO_LIVE" envDefault:"1m"`
}

// Enabled reports whether requests to collector must be signed
func (c CollectorAuthCfg) Enabled() bool {
	return c.PrivateKeyFile != ""
}

// CollectorCfg holds settings of downstream collector
type CollectorCfg struct {
	URL       string        `env:"COLLECTOR_URL,notEmpty"`
	MediaType string        `env:"COLLECTOR_MEDIA_TYPE" envDefault:"application/json"`
	Timeout   time.Duration `env:"COLLECTOR_TIMEOUT" envDefault:"0s"`
	AuthCfg   CollectorAuthCfg
}

// LogCfg holds logger settings
type LogCfg struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"text"`
	File       string `env:"LOG_FILE" envDefault:""`
	MaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28"`
}

// Config is application config
type Config struct {
	HTTPCfg      HTTPCfg
	CollectorCfg CollectorCfg
	LogCfg       LogCfg
}

// Build reads config from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := validateCollectorURL(cfg.CollectorCfg.URL); err != nil {
		return cfg, err
	}

	if _, _, err := mime.ParseMediaType(cfg.CollectorCfg.MediaType); err != nil {
		return cfg, fmt.Errorf("invalid collector media type %q - %w", cfg.CollectorCfg.MediaType, err)
	}

	if cfg.CollectorCfg.Timeout < 0 {
		return cfg, fmt.Errorf("collector timeout must not be negative, got %s", cfg.CollectorCfg.Timeout)
	}

	switch cfg.LogCfg.Format {
	case "text", "json":
	default:
		return cfg, fmt.Errorf("unsupported log format %q, expected text or json", cfg.LogCfg.Format)
	}

	return cfg, nil
}

func validateCollectorURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("failed to parse collector url - %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("collector url must use http or https scheme, got %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("collector url %q has no host", raw)
	}
	return nil
}
