// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the linsolve driver and its
// YAML persistence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/linsolve/solver"
	"gopkg.in/yaml.v3"
)

// Driver-level defaults; solver limits default to the solver package constants.
const (
	DefaultLogLevel   = "info" // logrus level name
	DefaultPlot       = false  // convergence plots off
	DefaultRefine     = true   // refine large residuals
	DefaultShowSystem = false  // do not echo A and b
)

// DefaultMethods is the order in which a system is solved when none is configured.
var DefaultMethods = []string{"gauss", "jacobi", "seidel"}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config selects the solvers to run and their limits.
type Config struct {
	Methods       []string     `yaml:"methods"`
	MaxIterations int          `yaml:"max_iterations"`
	Refine        RefineConfig `yaml:"refine"`
	Plot          bool         `yaml:"plot"`
	ShowSystem    bool         `yaml:"show_system"`
	LogLevel      string       `yaml:"log_level"`
}

// RefineConfig controls the refinement pass that follows a solve whose
// residual norm exceeds Threshold.
type RefineConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MaxIterations int     `yaml:"max_iterations"`
	Threshold     float64 `yaml:"threshold"`
}

// DefaultConfig returns a fresh Config holding every default.
func DefaultConfig() *Config {
	return &Config{
		Methods:       append([]string(nil), DefaultMethods...),
		MaxIterations: solver.DefaultMaxIterations,
		Refine: RefineConfig{
			Enabled:       DefaultRefine,
			MaxIterations: solver.DefaultRefineIterations,
			Threshold:     solver.DefaultResidualThreshold,
		},
		Plot:       DefaultPlot,
		ShowSystem: DefaultShowSystem,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults: keys absent from the file keep
// their default values. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first field that would make a solver option panic or
// name an unknown method.
func (c *Config) Validate() error {
	if len(c.Methods) == 0 {
		return fmt.Errorf("%w: no methods", ErrInvalidConfig)
	}
	for _, name := range c.Methods {
		if _, err := solver.ParseMethod(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations %d < 1", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Refine.MaxIterations < 1 {
		return fmt.Errorf("%w: refine.max_iterations %d < 1", ErrInvalidConfig, c.Refine.MaxIterations)
	}
	if math.IsNaN(c.Refine.Threshold) || math.IsInf(c.Refine.Threshold, 0) || c.Refine.Threshold < 0 {
		return fmt.Errorf("%w: refine.threshold %v", ErrInvalidConfig, c.Refine.Threshold)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// ParsedMethods resolves Methods in order. Call Validate first.
func (c *Config) ParsedMethods() ([]solver.Method, error) {
	out := make([]solver.Method, 0, len(c.Methods))
	for _, name := range c.Methods {
		m, err := solver.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// SolverOptions translates the limits into solver options. Call Validate
// first; invalid limits make the option constructors panic.
func (c *Config) SolverOptions() []solver.Option {
	return []solver.Option{
		solver.WithMaxIterations(c.MaxIterations),
		solver.WithRefineIterations(c.Refine.MaxIterations),
		solver.WithResidualThreshold(c.Refine.Threshold),
	}
}
