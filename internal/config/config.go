// Package config provides Viper-based hierarchical configuration for the
// categorization engine and CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"quillbooks/bookpipe/internal/models"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
		MaxRows   int    `mapstructure:"max_rows" yaml:"max_rows"`
	} `mapstructure:"csv" yaml:"csv"`

	Categorization struct {
		ReviewThreshold    float64 `mapstructure:"review_threshold" yaml:"review_threshold"`
		EmbeddingFloor     float64 `mapstructure:"embedding_floor" yaml:"embedding_floor"`
		FallbackConfidence float64 `mapstructure:"fallback_confidence" yaml:"fallback_confidence"`
		Workers            int     `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`
}

// Load initializes Viper configuration with hierarchical loading: defaults,
// then an optional config.yaml, then BOOKPIPE_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bookpipe")
	v.AddConfigPath(".bookpipe")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOOKPIPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file is worth a warning but not a refusal:
			// defaults and env vars still apply.
			logrus.WithError(err).WithField("file", v.ConfigFileUsed()).
				Warn("Error reading config file, using defaults and environment")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.max_rows", 10000)

	v.SetDefault("categorization.review_threshold", models.ReviewThreshold)
	v.SetDefault("categorization.embedding_floor", models.EmbeddingFloor)
	v.SetDefault("categorization.fallback_confidence", models.FallbackConfidence)
	v.SetDefault("categorization.workers", 0) // 0 = NumCPU

	v.SetDefault("rules.file", "rules.yaml")
}

func validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.MaxRows < 1 {
		return fmt.Errorf("csv.max_rows must be positive, got: %d", config.CSV.MaxRows)
	}

	for name, val := range map[string]float64{
		"categorization.review_threshold":    config.Categorization.ReviewThreshold,
		"categorization.embedding_floor":     config.Categorization.EmbeddingFloor,
		"categorization.fallback_confidence": config.Categorization.FallbackConfidence,
	} {
		if val < 0.0 || val > 1.0 {
			return fmt.Errorf("%s must be between 0.0 and 1.0, got: %f", name, val)
		}
	}

	if config.Categorization.Workers < 0 {
		return fmt.Errorf("categorization.workers must not be negative, got: %d", config.Categorization.Workers)
	}

	return nil
}
