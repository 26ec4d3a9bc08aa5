package app

import (
	"errors"
	"fmt"
)

// Value is one path argument given on the command line.
type Value struct {
	Name string
	Path string
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RulesPath string  // hcl file declaring the path arguments
	Values    []Value // in command-line order

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RulesPath == "" {
		return nil, errors.New("RulesPath is a required configuration field and cannot be empty")
	}

	seen := make(map[string]struct{}, len(cfg.Values))
	for _, v := range cfg.Values {
		if v.Name == "" {
			return nil, fmt.Errorf("path argument value %q has no name", v.Path)
		}
		if _, dup := seen[v.Name]; dup {
			return nil, fmt.Errorf("path argument %s was given more than once", v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	cfg.Values = append([]Value(nil), cfg.Values...)
	return &cfg, nil
}

// Lookup returns the path given for the argument name.
func (c *Config) Lookup(name string) (string, bool) {
	for _, v := range c.Values {
		if v.Name == name {
			return v.Path, true
		}
	}
	return "", false
}
