// Package experiment loads and saves run configuration for the training
// programs, so hyperparameters can be changed without recompiling.
package experiment

import (
	"math/rand"
	"os"
	"time"

	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/AlperHuseyn/clinical-nets/solvers"
)

// Config is the YAML-backed run configuration. A zero learning rate keeps
// the solver's own default, and a zero seed means a time-seeded run.
type Config struct {
	Name            string  `yaml:"name"`
	Epochs          int     `yaml:"epochs"`
	BatchSize       int     `yaml:"batch_size"`
	ValidationSplit float64 `yaml:"validation_split"`
	LearningRate    float64 `yaml:"learning_rate"`
	Solver          string  `yaml:"solver"`
	Seed            int64   `yaml:"seed"`
	Verbose         bool    `yaml:"verbose"`
}

// Default returns the settings shared by the training programs.
func Default() Config {
	return Config{
		Epochs:          100,
		BatchSize:       32,
		ValidationSplit: 0.2,
		Solver:          "adam",
		Verbose:         true,
	}
}

// Load reads the file at path over the given defaults. A missing file (or
// an empty path) returns the defaults untouched, and a partial file keeps
// the default for every field it does not set.
func Load(path string, def Config) (*Config, error) {
	cfg := def
	if path == "" {
		return &cfg, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read config %q", path)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "Couldn't parse config %q", path)
	}

	return &cfg, nil
}

// Save writes the configuration to path as YAML, overwriting any previous
// file there.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "Couldn't encode config")
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return errors.Wrapf(err, "Couldn't write config to %q", path)
	}

	return nil
}

// NewSolver builds the weight-update rule named by the configuration.
func (c *Config) NewSolver() (training.Solver, error) {
	return solvers.New(c.Solver, c.LearningRate)
}

// RNG returns the randomness source for the run: deterministic when Seed is
// non-zero, time-seeded otherwise.
func (c *Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
