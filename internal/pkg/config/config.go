package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golang-netcfg/internal/pkg/charset"
	"golang-netcfg/internal/pkg/logging"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// OutputConfig controls how captured tool output is treated before printing
type OutputConfig struct {
	// Encoding is the IANA charset name of ipconfig/netsh output. Empty keeps raw bytes.
	Encoding string `yaml:"encoding"`
}

// Config represents the main configuration structure
type Config struct {
	Logging  logging.LogConfig `yaml:"logging"`
	Output   OutputConfig      `yaml:"output"`
	Progress bool              `yaml:"progress"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
		},
		Progress: true,
	}
}

// Load loads configuration from a YAML file. Keys missing from the file keep
// their Default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Logging.Level != "" {
		if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging: %w", err)
		}
	}

	if c.Logging.Format != "" && !slices.Contains(logging.Formats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("logging: unknown format %q, expected one of %s", c.Logging.Format, strings.Join(logging.Formats, ", "))
	}

	if _, err := charset.Lookup(c.Output.Encoding); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}
