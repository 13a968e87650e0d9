// Package config loads the knobs of a training run from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/perceptron/internal/activation"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Shape        []int   `yaml:"shape"`
	Inputs       int     `yaml:"inputs"`
	Activation   string  `yaml:"activation"`
	LearningRate float32 `yaml:"learning_rate"`
	BatchSize    int     `yaml:"batch_size"`
	Generations  int     `yaml:"generations"`
	Seed         int64   `yaml:"seed"`
	LogEvery     int     `yaml:"log_every"`
}

// Overrides captures CLI supplied values. Zero values leave the config
// untouched.
type Overrides struct {
	Activation   string
	LearningRate float32
	BatchSize    int
	Generations  int
	Seed         int64
	LogEvery     int
}

// Default returns the two-input single-node perceptron of the line demo.
func Default() *Config {
	return &Config{
		Shape:        []int{1},
		Inputs:       2,
		Activation:   activation.Identity{}.Name(),
		LearningRate: 0.1,
		BatchSize:    500,
		Generations:  200,
		Seed:         1,
		LogEvery:     20,
	}
}

// Load reads and validates a Config from a YAML file. Keys missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a Config from r.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Activation != "" {
		c.Activation = o.Activation
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.BatchSize > 0 {
		c.BatchSize = o.BatchSize
	}
	if o.Generations > 0 {
		c.Generations = o.Generations
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Shape) == 0 {
		return errors.New("shape must list at least one layer")
	}
	for i, n := range c.Shape {
		if n <= 0 {
			return errors.Errorf("shape[%d] must be > 0 (got %d)", i, n)
		}
	}
	if c.Inputs <= 0 {
		return errors.Errorf("inputs must be > 0 (got %d)", c.Inputs)
	}
	if _, err := activation.Lookup(c.Activation); err != nil {
		return err
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("learning_rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.BatchSize <= 0 {
		return errors.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.Generations <= 0 {
		return errors.Errorf("generations must be > 0 (got %d)", c.Generations)
	}
	if c.LogEvery <= 0 {
		return errors.Errorf("log_every must be > 0 (got %d)", c.LogEvery)
	}
	return nil
}
