// Package config reads the optional inkmesh.yaml stroke settings.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/inkmesh/internal/stroke"
)

const DefaultFile = "inkmesh.yaml"

// Config represents the optional inkmesh.yaml configuration.
type Config struct {
	Stroke StrokeConfig `yaml:"stroke"`
}

// StrokeConfig mirrors stroke.Options. Zero values leave the default alone.
type StrokeConfig struct {
	Width        float64 `yaml:"width,omitempty"`
	Cap          string  `yaml:"cap,omitempty"`
	Subdivisions float64 `yaml:"subdivisions,omitempty"`
	MaxError     float64 `yaml:"max_error,omitempty"`
	MiterLimit   float64 `yaml:"miter_limit,omitempty"`
}

// LoadOptional reads the file at path if present. An empty path means
// DefaultFile in the working directory.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &cfg, nil
}

// StrokeOptions resolves the stroke settings against the defaults.
func (c *Config) StrokeOptions() (stroke.Options, error) {
	opts := stroke.DefaultOptions()
	s := c.Stroke

	for _, field := range []struct {
		name  string
		value float64
	}{
		{"width", s.Width},
		{"subdivisions", s.Subdivisions},
		{"max_error", s.MaxError},
		{"miter_limit", s.MiterLimit},
	} {
		if field.value < 0 {
			return opts, errors.Errorf("stroke.%s must not be negative (got %v)", field.name, field.value)
		}
	}

	if s.Width > 0 {
		opts.Width = s.Width
	}
	if s.Subdivisions > 0 {
		opts.Subdivisions = s.Subdivisions
	}
	if s.MaxError > 0 {
		opts.MaxError = s.MaxError
	}
	if s.MiterLimit > 0 {
		opts.MiterLimit = s.MiterLimit
	}
	if name := strings.TrimSpace(s.Cap); name != "" {
		capStyle, err := stroke.ParseCapStyle(strings.ToLower(name))
		if err != nil {
			return opts, errors.Wrap(err, "stroke.cap")
		}
		opts.Cap = capStyle
	}
	return opts, nil
}
