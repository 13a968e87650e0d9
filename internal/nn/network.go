// Package nn implements a feed-forward network of bias-augmented dense
// layers trained by batched gradient descent.
//
// This package provides:
//   - Layer: weights of shape (inputs+1) × nodes, bias folded in as a last row
//   - Network: an ordered chain of layers with FeedForward and Train
//   - TrainingBatch: an (input, expected output) sample
//
// A Network follows a single-writer / multiple-reader discipline: Train
// takes an exclusive lock, FeedForward, OutputLayer and Layers a shared one.
// Readers get copies of the weights, never the live matrices.
package nn

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/matrix"
)

// Network errors.
var (
	ErrInvalidShape = errors.New("invalid network shape")
	ErrEmptyBatch   = errors.New("training batch is empty")
)

// Config holds the construction-time dependencies of a Network.
type Config struct {
	// Activation used by Train. Defaults to activation.ReLU.
	Activation activation.Func

	// Rand initializes the weights. When nil, a source seeded with Seed is used.
	Rand *rand.Rand

	// Seed for the default random source.
	Seed int64
}

// Network is an ordered sequence of layers.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{1}, 2, nn.Config{Seed: 42})
//	err = net.Train(batch, 0.1)
//	out, err := net.FeedForward([]float32{0.3, -0.7})
type Network struct {
	mu         sync.RWMutex
	layers     []*Layer
	activation activation.Func
}

// NewNetwork builds one layer per entry of shape, threading each layer's
// node count forward as the next layer's input width. The first layer reads
// inputs values.
func NewNetwork(shape []int, inputs int, cfg Config) (*Network, error) {
	if len(shape) == 0 {
		return nil, errors.Wrap(ErrInvalidShape, "no layers")
	}
	if inputs <= 0 {
		return nil, errors.Wrapf(ErrInvalidShape, "input width %d", inputs)
	}

	if cfg.Activation == nil {
		cfg.Activation = activation.ReLU{}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // Weight initialization, not security-critical
	}

	layers := make([]*Layer, 0, len(shape))
	for i, nodes := range shape {
		if nodes <= 0 {
			return nil, errors.Wrapf(ErrInvalidShape, "layer %d has %d nodes", i, nodes)
		}
		layers = append(layers, NewLayer(nodes, inputs, rng))
		inputs = nodes
	}

	return &Network{
		layers:     layers,
		activation: cfg.Activation,
	}, nil
}

// FeedForward pipes inputs through every layer in order and returns the
// flattened output of the last one.
//
// No activation is applied between layers or to the output; activations
// only take part in Train.
func (n *Network) FeedForward(inputs []float32) ([]float32, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	food := matrix.FromVec(inputs)
	for i, layer := range n.layers {
		out, err := layer.FeedForward(food)
		if err != nil {
			return nil, errors.WithMessagef(err, "network feed forward: layer %d", i)
		}
		food = out
	}
	return food.Elements(), nil
}

// Train performs one batched gradient-descent step.
//
// For every sample, against the weights W of the last layer:
//
//	x  = [input | 1]
//	y  = x · W
//	e  = f(y) - expected
//	r  = f'(y) ⊙ e
//	g  = xᵗ · r
//
// The gradients are averaged over the batch and the first layer is updated
// with W_first += -learningRate * mean(g).
//
// Computing the gradient at the last layer and applying it to the first is
// only consistent for a single-layer network. Deeper shapes fail with a
// shape error unless their widths happen to line up, in which case the
// update is not true backpropagation.
func (n *Network) Train(batch []TrainingBatch, learningRate float32) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	weights := n.layers[len(n.layers)-1].weights
	var nudge *matrix.Matrix

	for i, b := range batch {
		g, err := n.gradient(weights, b)
		if err != nil {
			return errors.WithMessagef(err, "train: sample %d", i)
		}

		if nudge == nil {
			nudge = g
			continue
		}
		if nudge, err = nudge.Add(g); err != nil {
			return errors.WithMessagef(err, "train: accumulate sample %d", i)
		}
	}

	size := float32(len(batch))
	average := nudge.Map(func(v float32) float32 { return v / size })

	if err := n.layers[0].AdjustWeights(average.Scale(-learningRate)); err != nil {
		return errors.WithMessage(err, "train")
	}
	return nil
}

// gradient returns xᵗ · (f'(y) ⊙ (f(y) - t)) for one sample.
func (n *Network) gradient(weights *matrix.Matrix, b TrainingBatch) (*matrix.Matrix, error) {
	x, err := matrix.FromVec(b.Input).ExtendRows(bias)
	if err != nil {
		return nil, err
	}
	t := matrix.FromVec(b.Expected)

	y, err := x.MatMul(weights)
	if err != nil {
		return nil, err
	}

	e, err := n.activation.Activate(y).Sub(t)
	if err != nil {
		return nil, err
	}

	r, err := n.activation.Derivative(y).Hadamard(e)
	if err != nil {
		return nil, err
	}

	return x.Transpose().MatMul(r)
}

// OutputLayer returns a snapshot of the last layer.
func (n *Network) OutputLayer() *Layer {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.layers[len(n.layers)-1].Clone()
}

// Layers returns snapshots of every layer, input side first.
func (n *Network) Layers() []*Layer {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Layer, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.Clone()
	}
	return out
}

// Activation returns the activation function used by Train.
func (n *Network) Activation() activation.Func {
	return n.activation
}
