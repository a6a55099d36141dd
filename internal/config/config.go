// Package config loads settings for the linkqdemo command.
package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config holds the demo's settings. Values come from an optional
// config file and are then overridden by the environment.
type Config struct {
	Values   []int  `yaml:"values" env:"LINKQ_DEMO_VALUES" env-separator:"," env-default:"1,2,3,4" env-description:"values to enqueue at the start of the demo"`
	LogLevel string `yaml:"log_level" env:"LINKQ_LOG_LEVEL" env-default:"info" env-description:"zap log level"`
}

// Load reads the configuration. If path is empty, only the
// environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		err := cleanenv.ReadEnv(&cfg)
		if err != nil {
			return nil, errors.Wrap(err, "read environment")
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	return &cfg, nil
}

// Usage returns a description of the environment variables that
// Load understands.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
