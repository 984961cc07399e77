package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all environment variables read by Load.
const EnvPrefix = "TASKBOARD"

// Default values applied before any file or environment source.
const (
	DefaultPort                   = 3001
	DefaultLogLevel               = "info"
	DefaultMaxOpenConns           = 10
	DefaultMaxIdleConns           = 5
	DefaultConnMaxLifetimeMinutes = 5
	DefaultAPIURL                 = "http://localhost:3001"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// The unprefixed PORT and DATABASE_URL variables are honoured as fallbacks.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := newViper()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("database.conn_max_lifetime_minutes", DefaultConnMaxLifetimeMinutes)
	v.SetDefault("database.auto_migrate", true)

	bindings := map[string][]string{
		"server.port":                        {"TASKBOARD_SERVER_PORT", "PORT"},
		"server.log_level":                   {"TASKBOARD_SERVER_LOG_LEVEL"},
		"database.url":                       {"TASKBOARD_DATABASE_URL", "DATABASE_URL"},
		"database.max_open_conns":            {"TASKBOARD_DATABASE_MAX_OPEN_CONNS"},
		"database.max_idle_conns":            {"TASKBOARD_DATABASE_MAX_IDLE_CONNS"},
		"database.conn_max_lifetime_minutes": {"TASKBOARD_DATABASE_CONN_MAX_LIFETIME_MINUTES"},
		"database.auto_migrate":              {"TASKBOARD_DATABASE_AUTO_MIGRATE"},
	}
	if err := bindEnv(v, bindings); err != nil {
		return nil, err
	}

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadClient loads the task client configuration. TASKBOARD_API_URL overrides
// the api_url key of config.yaml, which overrides DefaultAPIURL.
func LoadClient() (*ClientConfig, error) {
	v := newViper()
	v.SetDefault("api_url", DefaultAPIURL)

	if err := bindEnv(v, map[string][]string{"api_url": {"TASKBOARD_API_URL"}}); err != nil {
		return nil, err
	}
	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func bindEnv(v *viper.Viper, bindings map[string][]string) error {
	for key, names := range bindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}
	return nil
}

// readConfigFile reads config.yaml if present. A missing file is not an error.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}
