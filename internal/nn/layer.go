package nn

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/matrix"
)

// bias is the constant input appended to every layer input.
var bias = []float32{1}

// Layer is a fully connected layer with the bias folded into its weights.
//
// The weight matrix has shape (inputs+1) × nodes: row i holds the weights
// of input i for every node, and the last row holds the biases. A forward
// pass is
//
//	y = [x | 1] · W
//
// where x is a 1×inputs row vector and y a 1×nodes row vector.
type Layer struct {
	inputs  int
	nodes   int
	weights *matrix.Matrix
}

// NewLayer creates a layer of nodes units reading inputs values, with every
// weight drawn uniformly from [-1, 1) using rng. A nil rng uses a source
// seeded with 0, as NewNetwork does for a zero Config.
func NewLayer(nodes, inputs int, rng *rand.Rand) *Layer {
	if rng == nil {
		rng = rand.New(rand.NewSource(0)) //nolint:gosec // Weight initialization, not security-critical
	}

	weights := make([]float32, (inputs+1)*nodes)
	for i := range weights {
		weights[i] = rng.Float32()*2 - 1
	}

	return &Layer{
		inputs:  inputs,
		nodes:   nodes,
		weights: matrix.New(nodes, inputs+1, weights),
	}
}

// FeedForward appends the bias input to x and multiplies by the weights.
//
// x must be a single-row matrix with Inputs() columns; otherwise the
// multiplication fails with matrix.ErrDimensionMismatch.
func (l *Layer) FeedForward(x *matrix.Matrix) (*matrix.Matrix, error) {
	withBias, err := x.ExtendRows(bias)
	if err != nil {
		return nil, errors.WithMessage(err, "layer feed forward")
	}

	y, err := withBias.MatMul(l.weights)
	if err != nil {
		return nil, errors.WithMessagef(err, "layer feed forward (%d inputs, %d nodes)", l.inputs, l.nodes)
	}
	return y, nil
}

// AdjustWeights adds delta element-wise into the weights in place.
// delta must have exactly the weight matrix's shape.
func (l *Layer) AdjustWeights(delta *matrix.Matrix) error {
	updated, err := l.weights.Add(delta)
	if err != nil {
		return errors.WithMessage(err, "adjust weights")
	}
	l.weights = updated
	return nil
}

// Weights returns a copy of the (inputs+1) × nodes weight matrix.
func (l *Layer) Weights() *matrix.Matrix {
	return l.weights.Clone()
}

// Inputs returns the number of inputs, excluding the bias.
func (l *Layer) Inputs() int {
	return l.inputs
}

// Nodes returns the number of nodes (output width).
func (l *Layer) Nodes() int {
	return l.nodes
}

// Clone returns a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		inputs:  l.inputs,
		nodes:   l.nodes,
		weights: l.weights.Clone(),
	}
}
