package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainCommand(t *testing.T) {
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	var out bytes.Buffer
	err := train(context.Background(), []string{"-generations", "5", "-batch", "50", "-seed", "3"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Generation: 5")
	assert.Contains(t, out.String(), "output layer weights:")
}

func TestTrainCommandConfigFile(t *testing.T) {
	log.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generations: 3\nbatch_size: 10\nactivation: tanh\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, train(context.Background(), []string{"-config", path}, &out))
	assert.Contains(t, out.String(), "Generation: 3")
}

func TestTrainCommandErrors(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, train(context.Background(), []string{"-activation", "gelu"}, &out))
	assert.Error(t, train(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &out))
	assert.Error(t, train(context.Background(), []string{"-unknown-flag"}, &out))
}

func TestUsageListsActivations(t *testing.T) {
	var out bytes.Buffer
	usage(&out)

	assert.True(t, strings.Contains(out.String(), "relu"))
	assert.Contains(t, out.String(), "train")
}
