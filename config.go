package main

import (
	"crimson/eval"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the optional ~/.crimson.yaml file. Missing keys keep their
// defaults.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	MaxDepth    int    `yaml:"max_depth"`
	ParseCache  int    `yaml:"parse_cache"`
	Color       bool   `yaml:"color"`
	LogLevel    string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Prompt:     "> ",
		ParseCache: 64,
		Color:      true,
		LogLevel:   "warning",
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crimson.yaml")
}

// loadConfig reads path over the defaults. A missing file is only an
// error if the user named it explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.MaxDepth < 0 {
		return cfg, errors.Errorf("%s: max_depth must not be negative", path)
	}
	cfg.MaxDepth = min(cfg.MaxDepth, eval.MaxDepthLimit)
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, errors.Wrapf(err, "%s: log_level", path)
	}
	return cfg, nil
}
