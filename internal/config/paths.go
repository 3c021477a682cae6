package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath overrides config discovery entirely
	EnvConfigPath = "ASTROLOH_CONFIG"

	// ConfigFileName is the working-directory config name
	ConfigFileName = "astroloh.yaml"

	// ConfigDirName is the directory under XDG config / /etc
	ConfigDirName = "astroloh"
)

// FindConfigPath returns the first existing config file in priority order,
// or "" when none is found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	systemPath := filepath.Join("/etc", ConfigDirName, "config.yaml")
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
