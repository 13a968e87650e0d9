// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feed-forward network and its layers.
//
// # Basic Usage
//
//	net, err := nn.NewNetwork([]int{1}, 2, nn.Config{
//	    Activation: activation.Identity{},
//	    Seed:       42,
//	})
//
//	batch := []nn.TrainingBatch{
//	    {Input: []float32{0.2, 0.7}, Expected: []float32{1}},
//	    {Input: []float32{0.4, -0.3}, Expected: []float32{-1}},
//	}
//	err = net.Train(batch, 0.1)
//
//	out, err := net.FeedForward([]float32{0.1, 0.9})
//
// # Training
//
// Train computes the gradient of every sample against the last layer,
// averages it over the batch and applies it to the first layer. This is
// exact for single-layer networks only.
//
// # Concurrency
//
// Train is exclusive; FeedForward, OutputLayer and Layers may run
// concurrently with each other and receive copies of the weights.
package nn

import (
	"math/rand"

	"github.com/born-ml/perceptron/internal/nn"
)

// Network is an ordered sequence of layers.
type Network = nn.Network

// Layer is a dense layer with weights of shape (inputs+1) × nodes.
type Layer = nn.Layer

// TrainingBatch is one (input, expected output) training sample.
type TrainingBatch = nn.TrainingBatch

// Config holds the construction-time dependencies of a Network.
type Config = nn.Config

// Errors.
var (
	ErrInvalidShape = nn.ErrInvalidShape
	ErrEmptyBatch   = nn.ErrEmptyBatch
)

// NewNetwork builds one layer per entry of shape, the first reading inputs
// values.
func NewNetwork(shape []int, inputs int, cfg Config) (*Network, error) {
	return nn.NewNetwork(shape, inputs, cfg)
}

// NewLayer creates a layer with weights drawn uniformly from [-1, 1). A nil
// rng uses a source seeded with 0.
func NewLayer(nodes, inputs int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nodes, inputs, rng)
}
