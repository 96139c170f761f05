// Package config loads TipJarz configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Wallet   WalletConfig   `yaml:"wallet"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"TIPJARZ_ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"TIPJARZ_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"TIPJARZ_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"TIPJARZ_SHUTDOWN_TIMEOUT"`
}

// SupabaseConfig configures the external store.
type SupabaseConfig struct {
	URL        string `yaml:"url" env:"SUPABASE_URL"`
	ServiceKey string `yaml:"service_key" env:"SUPABASE_SERVICE_KEY"`
}

// WalletConfig configures the simulated payment rail.
type WalletConfig struct {
	SubmitDelay time.Duration `yaml:"submit_delay" env:"WALLET_SUBMIT_DELAY"`
	SuccessRate float64       `yaml:"success_rate" env:"WALLET_SUCCESS_RATE"`
}

// CORSConfig configures allowed frontend origins.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Wallet: WalletConfig{
			SubmitDelay: 2 * time.Second,
			SuccessRate: 0.95,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// TIPJARZ_CONFIG (if set), then environment overrides. Supabase
// credentials must come from one of the two sources.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("TIPJARZ_CONFIG"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.Supabase.ServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}

	return cfg, nil
}

// loadFile overlays YAML configuration from path onto cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
