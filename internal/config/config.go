// Package config loads the server configuration from YAML.
//
// Config file locations (priority order):
//  1. $ASTROLOH_CONFIG
//  2. ./astroloh.yaml
//  3. $XDG_CONFIG_HOME/astroloh/config.yaml (or ~/.config/astroloh/config.yaml)
//  4. /etc/astroloh/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"astroloh/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration document
type Config struct {
	Listen    string              `yaml:"listen"`
	Database  DatabaseConfig      `yaml:"database"`
	Ephemeris EphemerisConfig     `yaml:"ephemeris"`
	Auth      AuthConfig          `yaml:"auth"`
	Chart     domain.ChartOptions `yaml:"chart"`
}

// DatabaseConfig locates the chart store
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// EphemerisConfig points at the upstream position service
type EphemerisConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// AuthConfig lists users as username -> bcrypt hash. An empty map
// disables authentication.
type AuthConfig struct {
	Users      map[string]string `yaml:"users"`
	SessionTTL time.Duration     `yaml:"session_ttl"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, path, nil
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./astroloh.db"
	}
	if c.Ephemeris.Timeout == 0 {
		c.Ephemeris.Timeout = 10 * time.Second
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 12 * time.Hour
	}
}
