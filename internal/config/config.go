// Package config loads tripreport settings from defaults, an optional config
// file, TRIPREPORT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mmynk/tripreport/internal/filter"
)

// Config keys, shared by flags, environment and config file.
const (
	KeyMinMPH      = "min_mph"
	KeyMaxMPH      = "max_mph"
	KeyLogLevel    = "log_level"
	KeyMetricsFile = "metrics_file"
	KeyDBPath      = "db_path"
	KeyConfigFile  = "config"
)

const envPrefix = "TRIPREPORT"

// Config holds all configuration for a report run.
type Config struct {
	// MinMPH and MaxMPH bound the admitted average trip speed, inclusive.
	MinMPH float64 `mapstructure:"min_mph"`
	MaxMPH float64 `mapstructure:"max_mph"`

	LogLevel string `mapstructure:"log_level"`

	// MetricsFile, when set, receives Prometheus metrics after the run.
	MetricsFile string `mapstructure:"metrics_file"`

	// DBPath, when set, reads drivers and trips from a SQLite database
	// instead of log files.
	DBPath string `mapstructure:"db_path"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMinMPH, float64(filter.DefaultMinMPH))
	v.SetDefault(KeyMaxMPH, float64(filter.DefaultMaxMPH))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyDBPath, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags makes command-line flags override every other source.
// Flag names use dashes in place of the key underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyMinMPH, KeyMaxMPH, KeyLogLevel, KeyMetricsFile, KeyDBPath, KeyConfigFile} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

// Load reads the optional config file and decodes the merged settings.
// Without an explicit file, tripreport.yaml in the working directory is used
// if present.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tripreport")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the speed bounds form a usable range.
func (c *Config) Validate() error {
	if c.MinMPH < 0 || c.MaxMPH < 0 {
		return fmt.Errorf("speed bounds must not be negative: min=%v max=%v", c.MinMPH, c.MaxMPH)
	}
	if c.MinMPH > c.MaxMPH {
		return fmt.Errorf("min_mph %v exceeds max_mph %v", c.MinMPH, c.MaxMPH)
	}
	return nil
}
