package config

import (
	"time"

	"minibrowser/application/http"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the command line browser's settings, loaded from an
// optional .env file and the environment.
type Config struct {
	AppName            string `mapstructure:"app_name"`
	LogLevel           string `mapstructure:"log_level"`
	MaxResponseBytes   int64  `mapstructure:"max_response_bytes"`
	HTTPVersion        string `mapstructure:"http_version"`
	DialTimeoutSeconds int64  `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds int64  `mapstructure:"read_timeout_seconds"`
	Prompt             string `mapstructure:"prompt"`

	Version     http.Version  `mapstructure:"-"`
	DialTimeout time.Duration `mapstructure:"-"`
	ReadTimeout time.Duration `mapstructure:"-"`
}

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Load reads configuration from environment variables and .env.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "minibrowser")
	v.SetDefault("log_level", "warn")
	v.SetDefault("max_response_bytes", http.DefaultMaxResponseSize)
	v.SetDefault("http_version", "1.1")
	v.SetDefault("dial_timeout_seconds", 10)
	v.SetDefault("read_timeout_seconds", 0) // unbounded
	v.SetDefault("prompt", "? ")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if !logLevels[cfg.LogLevel] {
		return nil, errors.Errorf("invalid log_level %q", cfg.LogLevel)
	}

	if cfg.MaxResponseBytes <= 0 {
		return nil, errors.New("invalid max_response_bytes (must be positive)")
	}

	ver, err := http.ParseVersion([]byte("HTTP/" + cfg.HTTPVersion))
	if err != nil || (ver != http.Version10 && ver != http.Version11) {
		return nil, errors.Errorf("invalid http_version %q (must be 1.0 or 1.1)", cfg.HTTPVersion)
	}
	cfg.Version = ver

	if cfg.DialTimeoutSeconds <= 0 {
		return nil, errors.New("invalid dial_timeout_seconds (must be positive seconds)")
	}
	if cfg.ReadTimeoutSeconds < 0 {
		return nil, errors.New("invalid read_timeout_seconds (must not be negative)")
	}
	cfg.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	cfg.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second

	return &cfg, nil
}
