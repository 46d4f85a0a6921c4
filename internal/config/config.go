// Package config loads service configuration from an optional yaml file and
// the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ayusman/mudra/internal/logger"
)

// DetectorConfig holds the hand landmark estimator parameters.
type DetectorConfig struct {
	MaxHands              int     `mapstructure:"max_hands"`
	MinConfidence         float64 `mapstructure:"min_confidence"`
	MinTrackingConfidence float64 `mapstructure:"min_tracking_confidence"`
	ScriptPath            string  `mapstructure:"script_path"`
}

// Config is the full service configuration.
type Config struct {
	Addr     string         `mapstructure:"addr"`
	Detector DetectorConfig `mapstructure:"detector"`
	Log      logger.Config  `mapstructure:"log"`
}

// Load reads configuration from the given yaml file, if any, with environment
// variables (MUDRA_ prefix, dots replaced by underscores) overriding file
// values and defaults filling the rest. An empty path means defaults and
// environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("addr", ":8000")
	v.SetDefault("detector.max_hands", 1)
	v.SetDefault("detector.min_confidence", 0.7)
	v.SetDefault("detector.min_tracking_confidence", 0.7)
	v.SetDefault("detector.script_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.name", "mudra.log")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("log.file.compress", true)

	v.SetEnvPrefix("mudra")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
