package config

import (
	"fmt"
	"os"

	"brigade/internal/derive"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`

	Storage struct {
		// Backend is "file", "sqlite3", or "postgres".
		Backend string `yaml:"backend"`
		// Path is the data directory (file) or database file (sqlite3).
		Path string `yaml:"path"`
		// DSN is the postgres connection string.
		DSN string `yaml:"dsn"`
	} `yaml:"storage"`

	Auth struct {
		Enabled   bool   `yaml:"enabled"`
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	Budget struct {
		Weekly float64 `yaml:"weekly"`
	} `yaml:"budget"`

	Alerts derive.AlertConfig `yaml:"alerts"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Storage.Backend = "file"
	cfg.Storage.Path = "data"
	cfg.Budget.Weekly = 2500
	cfg.Alerts = derive.DefaultAlertConfig()
	return cfg
}

// Load reads the YAML configuration at path over the defaults, then applies
// environment overrides. JWT_SECRET always wins over the file so the secret
// can stay out of version control.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Storage.DSN = dsn
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth enabled but no JWT secret configured")
	}
	return cfg, nil
}
