package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Output Output `yaml:"output"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Dict("log", c.Log.ToDict()).
		Dict("output", c.Output.ToDict())
}

func (c *Config) setDefaults() {
	c.Log.setDefaults()
	c.Output.setDefaults()
}

func (c *Config) validate() error {
	if err := c.Log.validate(); nil != err {
		return fmt.Errorf("log config validation failed: %v", err)
	}

	if err := c.Output.validate(); nil != err {
		return fmt.Errorf("output config validation failed: %v", err)
	}

	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Log) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("level", c.Level).
		Str("format", c.Format)
}

func (c *Log) setDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}

	if c.Format == "" {
		c.Format = "pretty"
	}
}

func (c *Log) validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error", "fatal", "panic"}, c.Level) {
		return fmt.Errorf(
			"level must be one of: debug, info, warn, error, fatal, panic, got: %s",
			c.Level,
		)
	}

	if !slices.Contains([]string{"json", "pretty"}, c.Format) {
		return fmt.Errorf("format must be 'json' or 'pretty', got: %s", c.Format)
	}

	return nil
}

type Output struct {
	Format string `yaml:"format"`
}

func (c *Output) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("format", c.Format)
}

func (c *Output) setDefaults() {
	if c.Format == "" {
		c.Format = "debug"
	}
}

func (c *Output) validate() error {
	if !slices.Contains([]string{"debug", "json", "table"}, c.Format) {
		return fmt.Errorf("format must be one of: debug, json, table, got: %s", c.Format)
	}

	return nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var conf Config
	conf.setDefaults()

	return &conf
}

// Load reads filename. No file is looked up when filename is empty: the
// built-in defaults are returned instead.
func Load(filename string) (*Config, error) {
	if len(filename) == 0 {
		return Default(), nil
	}

	data, err := os.ReadFile(filename)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file %s: %v", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); nil != err {
		return nil, fmt.Errorf("failed to parse config file %s: %v", filename, err)
	}

	conf.setDefaults()

	if err := conf.validate(); nil != err {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return &conf, nil
}
