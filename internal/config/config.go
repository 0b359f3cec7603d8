// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the optional YAML run configuration.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

// Config is the run configuration. All fields are optional; zero values
// fall back to the runner defaults. There is deliberately no process-wide
// configuration: a Config is built per invocation and passed down.
type Config struct {
	// Exclusions lists attribute ids omitted entirely from the run.
	Exclusions []string `yaml:"exclusions"`

	// Weights overrides attribute weights by id.
	Weights map[string]float64 `yaml:"weights"`

	// Concurrency bounds parallel check execution.
	Concurrency int `yaml:"concurrency"`

	// CheckTimeout bounds each check, e.g. "10s".
	CheckTimeout string `yaml:"check_timeout"`

	// MaxFiles is the confirmation threshold for large repositories.
	MaxFiles int `yaml:"max_files"`
}

// Default returns the zero configuration (runner defaults apply).
func Default() *Config {
	return &Config{}
}

// Load reads a YAML config file. Unknown keys are a configuration error,
// to catch typos before a run silently ignores them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, attr.Configf("reading config %s: %v", path, err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, attr.Configf("parsing config %s: %v", path, err)
	}
	if _, err := cfg.Timeout(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Timeout parses CheckTimeout, returning zero for "use the default".
func (c *Config) Timeout() (time.Duration, error) {
	if c.CheckTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CheckTimeout)
	if err != nil {
		return 0, attr.Configf("invalid check_timeout %q: %v", c.CheckTimeout, err)
	}
	if d <= 0 {
		return 0, attr.Configf("check_timeout must be positive, got %q", c.CheckTimeout)
	}
	return d, nil
}

// Options converts the config into runner options. Guard hooks and the
// logger stay with the caller.
func (c *Config) Options() (runner.Options, error) {
	timeout, err := c.Timeout()
	if err != nil {
		return runner.Options{}, err
	}
	return runner.Options{
		Concurrency:  c.Concurrency,
		CheckTimeout: timeout,
		MaxFiles:     c.MaxFiles,
	}, nil
}
