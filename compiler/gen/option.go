package gen

import (
	"errors"
	"log/slog"
	"maps"
)

// Option configures code generation.
type Option func(*Config) error

// WithSources sets the configuration sources.
// It replaces any option set before.
func WithSources(s Sources) Option {
	return func(c *Config) error {
		c.Sources = s
		return nil
	}
}

// WithGlobalOption sets a run-wide configuration value.
// Build-property keys are accepted as-is.
func WithGlobalOption(key, value string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewConfigError("GlobalOption", nil, "key cannot be empty")
		}
		if c.Sources.Global == nil {
			c.Sources.Global = make(map[string]string)
		}
		c.Sources.Global[key] = value
		return nil
	}
}

// WithGlobalOptions merges run-wide configuration values.
func WithGlobalOptions(kv map[string]string) Option {
	return func(c *Config) error {
		if c.Sources.Global == nil {
			c.Sources.Global = make(map[string]string, len(kv))
		}
		maps.Copy(c.Sources.Global, kv)
		return nil
	}
}

// WithFileOption sets a configuration value scoped to the input at path.
func WithFileOption(path, key, value string) Option {
	return func(c *Config) error {
		switch {
		case path == "":
			return NewConfigError("FileOption", nil, "path cannot be empty")
		case key == "":
			return NewConfigError("FileOption", path, "key cannot be empty")
		}
		if c.Sources.Files == nil {
			c.Sources.Files = make(map[string]map[string]string)
		}
		if c.Sources.Files[path] == nil {
			c.Sources.Files[path] = make(map[string]string)
		}
		c.Sources.Files[path][key] = value
		return nil
	}
}

// WithDialect sets the dialect that renders accessor classes.
func WithDialect(d Dialect) Option {
	return func(c *Config) error {
		if d == nil {
			return NewConfigError("Dialect", nil, "dialect cannot be nil")
		}
		c.Dialect = d
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name, e.g. "dedupe".
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Feature", name, "unknown feature")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithLogger sets the logger of the generator.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
