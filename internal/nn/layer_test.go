package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/perceptron/internal/matrix"
)

func TestNewLayerShape(t *testing.T) {
	l := NewLayer(4, 3, rand.New(rand.NewSource(1)))

	w := l.Weights()
	assert.Equal(t, 4, w.Rows(), "inputs + 1 bias row")
	assert.Equal(t, 4, w.Cols())
	assert.Equal(t, 3, l.Inputs())
	assert.Equal(t, 4, l.Nodes())

	for _, v := range w.Elements() {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.Less(t, v, float32(1))
	}
}

func TestNewLayerDeterministic(t *testing.T) {
	a := NewLayer(3, 2, rand.New(rand.NewSource(42)))
	b := NewLayer(3, 2, rand.New(rand.NewSource(42)))

	assert.True(t, a.Weights().Equal(b.Weights()))
}

func TestNewLayerNilRand(t *testing.T) {
	var l *Layer
	require.NotPanics(t, func() { l = NewLayer(2, 2, nil) })

	assert.True(t, l.Weights().Equal(NewLayer(2, 2, rand.New(rand.NewSource(0))).Weights()))

	net, err := NewNetwork([]int{2}, 2, Config{})
	require.NoError(t, err)
	assert.True(t, l.Weights().Equal(net.OutputLayer().Weights()), "matches a zero-config network")
}

func TestLayerFeedForward(t *testing.T) {
	l := &Layer{
		inputs: 2,
		nodes:  2,
		// rows: input 0, input 1, bias
		weights: matrix.New(2, 3, []float32{1, 2, 3, 4, 5, 6}),
	}

	y, err := l.FeedForward(matrix.FromVec([]float32{1, -1}))
	require.NoError(t, err)

	// [1 -1 1] · W = [1-3+5, 2-4+6]
	assert.True(t, y.Equal(matrix.FromVec([]float32{3, 4})), "got %s", y)
}

func TestLayerFeedForwardWrongWidth(t *testing.T) {
	l := NewLayer(2, 3, rand.New(rand.NewSource(1)))

	_, err := l.FeedForward(matrix.FromVec([]float32{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLayerAdjustWeights(t *testing.T) {
	l := &Layer{inputs: 1, nodes: 1, weights: matrix.New(1, 2, []float32{0.5, -0.5})}

	require.NoError(t, l.AdjustWeights(matrix.New(1, 2, []float32{0.25, 1})))
	assert.Equal(t, []float32{0.75, 0.5}, l.Weights().Elements())

	err := l.AdjustWeights(matrix.New(2, 1, []float32{1, 1}))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Equal(t, []float32{0.75, 0.5}, l.Weights().Elements(), "failed adjustment must not change weights")
}

func TestLayerWeightsIsSnapshot(t *testing.T) {
	l := NewLayer(1, 1, rand.New(rand.NewSource(1)))
	w := l.Weights()
	require.NoError(t, w.Set(0, 0, 100))

	v, err := l.Weights().Get(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, float32(100), v)
}
