// Package config loads droidicon settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/droidicon"
	intImage "github.com/gogpu/droidicon/internal/image"
)

// Default paths match the layout of a React Native project.
const (
	DefaultSource     = "src/assets/images/icon.jpeg"
	DefaultOutputRoot = "android/app/src/main/res"
)

// Config represents the generator configuration.
type Config struct {
	Source        string                  `yaml:"source"`
	OutputRoot    string                  `yaml:"output_root"`
	BorderPercent float64                 `yaml:"border_percent"`
	ContentRatio  float64                 `yaml:"content_ratio"`
	Filter        string                  `yaml:"filter"`
	Trim          bool                    `yaml:"trim"`
	Families      []string                `yaml:"families"`
	Densities     []droidicon.DensitySpec `yaml:"densities"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source:       DefaultSource,
		OutputRoot:   DefaultOutputRoot,
		ContentRatio: intImage.DefaultContentRatio,
		Filter:       intImage.FilterLanczos.String(),
		Trim:         true,
		Families:     []string{"legacy", "foreground"},
		Densities:    droidicon.DefaultDensities(),
	}
}

// Load reads and parses the configuration file. Keys missing from the file
// keep their Default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration without touching the filesystem.
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.OutputRoot == "" {
		return errors.New("output_root is required")
	}
	if c.BorderPercent < 0 {
		return fmt.Errorf("border_percent must not be negative, got %v", c.BorderPercent)
	}
	if !(c.ContentRatio > 0 && c.ContentRatio <= 1) {
		return fmt.Errorf("content_ratio must be in (0, 1], got %v", c.ContentRatio)
	}
	if _, err := intImage.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if _, err := droidicon.ParseFamilies(c.Families...); err != nil {
		return fmt.Errorf("families: %w", err)
	}
	if err := droidicon.ValidateDensities(c.Densities); err != nil {
		return fmt.Errorf("densities: %w", err)
	}
	return nil
}

// Options converts the configuration into Run options. The configuration
// must have passed Validate.
func (c *Config) Options() []droidicon.Option {
	families, err := droidicon.ParseFamilies(c.Families...)
	if err != nil {
		families = droidicon.FamilyAll
	}
	return []droidicon.Option{
		droidicon.WithDensities(c.Densities),
		droidicon.WithFamilies(families),
		droidicon.WithBorderPercent(c.BorderPercent),
		droidicon.WithContentRatio(c.ContentRatio),
		droidicon.WithFilter(c.Filter),
		droidicon.WithTrim(c.Trim),
	}
}
