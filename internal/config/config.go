// Package config loads solver settings from an INI file.
package config

import (
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/timpalpant/nashsolver/matrixgame"
)

type Config struct {
	Solver SolverConfig
	Cache  CacheConfig
	Server ServerConfig
}

type SolverConfig struct {
	MaxIterations         int     `ini:"max_iterations"`
	MinIterations         int     `ini:"min_iterations"`
	LearningRateThreshold float64 `ini:"learning_rate_threshold"`
	// Zero disables the tolerance stopping rule.
	Tolerance float64 `ini:"tolerance"`
}

type CacheConfig struct {
	// Number of solved matrices to keep.
	Size int `ini:"size"`
}

type ServerConfig struct {
	Addr string `ini:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxIterations:         matrixgame.DefaultParams.MaxIterations,
			MinIterations:         matrixgame.DefaultParams.MinIterations,
			LearningRateThreshold: matrixgame.DefaultParams.LearningRateThreshold,
			Tolerance:             matrixgame.DefaultParams.Tolerance,
		},
		Cache: CacheConfig{
			Size: 1024,
		},
		Server: ServerConfig{
			Addr: "localhost:4123",
		},
	}
}

// Load reads the INI file at path. Keys that are absent keep their defaults.
func Load(path string) (*Config, error) {
	return load(path)
}

// Parse is like Load, but reads the INI contents from data.
func Parse(data []byte) (*Config, error) {
	return load(data)
}

func load(source interface{}) (*Config, error) {
	f, err := ini.Load(source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	cfg := Default()
	if err := f.Section("solver").StrictMapTo(&cfg.Solver); err != nil {
		return nil, errors.Wrap(err, "failed to map [solver] section")
	}
	if err := f.Section("cache").StrictMapTo(&cfg.Cache); err != nil {
		return nil, errors.Wrap(err, "failed to map [cache] section")
	}
	if err := f.Section("server").StrictMapTo(&cfg.Server); err != nil {
		return nil, errors.Wrap(err, "failed to map [server] section")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Solver.MaxIterations <= 0 {
		return errors.Errorf("max_iterations must be positive, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.MinIterations < 0 {
		return errors.Errorf("min_iterations must be non-negative, got %d", c.Solver.MinIterations)
	}
	if c.Solver.LearningRateThreshold < 0 {
		return errors.Errorf("learning_rate_threshold must be non-negative, got %v", c.Solver.LearningRateThreshold)
	}
	if c.Solver.Tolerance < 0 {
		return errors.Errorf("tolerance must be non-negative, got %v", c.Solver.Tolerance)
	}
	if c.Cache.Size <= 0 {
		return errors.Errorf("cache size must be positive, got %d", c.Cache.Size)
	}

	return nil
}

func (c *Config) Params() matrixgame.Params {
	return matrixgame.Params{
		MaxIterations:         c.Solver.MaxIterations,
		MinIterations:         c.Solver.MinIterations,
		LearningRateThreshold: c.Solver.LearningRateThreshold,
		Tolerance:             c.Solver.Tolerance,
	}
}
