// Package config loads server settings from an optional YAML file with
// SIS_* environment overrides on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DataDir    string `yaml:"data_dir"`
	ReportsDir string `yaml:"reports_dir"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		DataDir:    "data",
		ReportsDir: "reports",
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to defaults
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SIS_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SIS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SIS_REPORTS_DIR"); v != "" {
		cfg.ReportsDir = v
	}
	if v := os.Getenv("SIS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
