package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/internal/activation"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

// ReLU is the library default, but with ±1 targets its output unit dies on
// the negative side, so the demo trains the least-squares identity unit.
func TestDefaultActivationIsIdentity(t *testing.T) {
	assert.Equal(t, activation.Identity{}.Name(), Default().Activation)
	assert.NotEqual(t, activation.ReLU{}.Name(), Default().Activation)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := `# two-class line demo
shape: [2, 1]
inputs: 2
activation: relu
learning_rate: 0.05
batch_size: 64
generations: 10
seed: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, cfg.Shape)
	assert.Equal(t, 2, cfg.Inputs)
	assert.Equal(t, "relu", cfg.Activation)
	assert.InDelta(t, 0.05, cfg.LearningRate, 1e-6)
	assert.Equal(t, 64, cfg.BatchSize)
	assert.Equal(t, 10, cfg.Generations)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, Default().LogEvery, cfg.LogEvery, "missing keys keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := Parse(strings.NewReader("epochs: 3\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty shape", func(c *Config) { c.Shape = nil }},
		{"zero layer", func(c *Config) { c.Shape = []int{2, 0} }},
		{"no inputs", func(c *Config) { c.Inputs = 0 }},
		{"negative learning rate", func(c *Config) { c.LearningRate = -1 }},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }},
		{"zero generations", func(c *Config) { c.Generations = 0 }},
		{"zero log interval", func(c *Config) { c.LogEvery = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Activation = "gelu"
	assert.ErrorIs(t, cfg.Validate(), activation.ErrUnknown)

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestValidateLeavesConfigUntouched(t *testing.T) {
	cfg := Default()
	cfg.LogEvery = -3
	want := *cfg

	assert.Error(t, cfg.Validate())
	assert.Equal(t, want, *cfg)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		Activation:  "tanh",
		BatchSize:   32,
		Generations: 5,
	})

	assert.Equal(t, "tanh", cfg.Activation)
	assert.Equal(t, 32, cfg.BatchSize)
	assert.Equal(t, 5, cfg.Generations)
	assert.Equal(t, Default().LearningRate, cfg.LearningRate, "zero override leaves value")
	assert.Equal(t, Default().Seed, cfg.Seed)
}
