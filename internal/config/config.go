// Package config loads the googleauth command configuration.
//
// Sources are applied in order, later ones winning: an optional YAML file,
// an optional .env file, then the process environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/progressit/googleauth/pkg/logger"
	"github.com/progressit/googleauth/pkg/oauth"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full command configuration.
type Config struct {
	Google oauth.GoogleConfig  `yaml:"google"`
	Log    logger.Config       `yaml:"log"`
	Sentry logger.SentryConfig `yaml:"sentry"`
}

// Load reads configuration. Empty paths are skipped.
// Variables already present in the environment are not overwritten by envFile.
func Load(path, envFile string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cfg, nil
}

// Validate checks the Google client settings needed to build requests.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidConfig, err)
	}

	errs := []error{ErrInvalidConfig}
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
	}
	return errors.Join(errs...)
}
