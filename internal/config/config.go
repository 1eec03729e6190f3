// Package config loads the lawcheck settings from an optional YAML file,
// LAWCHECK_ environment variables and bound command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. LAWCHECK_SAMPLES.
	EnvPrefix = "lawcheck"

	// DefaultFile is read when no file is given. It may be absent.
	DefaultFile = "./lawcheck.yaml"
)

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Samples int       `mapstructure:"samples"`
	Seed    uint64    `mapstructure:"seed"`
	Bound   int       `mapstructure:"bound"`
	Metrics bool      `mapstructure:"metrics"`
	Log     LogConfig `mapstructure:"log"`
	Suites  []string  `mapstructure:"suites"`
}

// New returns a viper instance carrying the defaults and the environment
// binding. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("samples", 100)
	v.SetDefault("seed", 0)
	v.SetDefault("bound", 4)
	v.SetDefault("metrics", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("suites", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v and unmarshals the merged settings. An empty file
// means DefaultFile. A missing file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file == "" {
		file = DefaultFile
	}
	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !notFound(err) {
		return Config{}, fmt.Errorf("read config %s: %w", file, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", file, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", file, err)
	}
	return c, nil
}

// Validate rejects settings the runner cannot use.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Bound <= 0 {
		return fmt.Errorf("bound must be positive, got %d", c.Bound)
	}
	return nil
}

// notFound also matches plain filesystem errors: with SetConfigFile viper
// reports a missing file as fs.ErrNotExist, not ConfigFileNotFoundError.
func notFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
