package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineClassify(t *testing.T) {
	line := Line{M: 1, C: 0}

	assert.Equal(t, LabelA, line.Classify(0, 0.5))
	assert.Equal(t, LabelB, line.Classify(0, -0.5))
	assert.Equal(t, LabelB, line.Classify(0.25, 0.25), "points on the line are B")
}

func TestLabelTarget(t *testing.T) {
	assert.Equal(t, float32(1), LabelA.Target())
	assert.Equal(t, float32(-1), LabelB.Target())
	assert.Equal(t, "A", LabelA.String())
	assert.Equal(t, "B", LabelB.String())
}

func TestRandomLineRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		l := RandomLine(rng)
		assert.GreaterOrEqual(t, l.C, float32(-0.5))
		assert.Less(t, l.C, float32(0.5))
		assert.LessOrEqual(t, l.M, float32(10))
		assert.GreaterOrEqual(t, l.M, float32(-10))
	}
}

func TestGenerate(t *testing.T) {
	line := Line{M: 0.3, C: 0.1}
	s := Generate(200, line, rand.New(rand.NewSource(2)))

	require.Len(t, s.Points, 200)
	for _, p := range s.Points {
		assert.GreaterOrEqual(t, p.X, float32(-1))
		assert.Less(t, p.X, float32(1))
		assert.GreaterOrEqual(t, p.Y, float32(-1))
		assert.Less(t, p.Y, float32(1))
		assert.Equal(t, line.Classify(p.X, p.Y), p.Label)
	}
}

func TestExtendAndReset(t *testing.T) {
	s := Generate(10, Line{}, rand.New(rand.NewSource(3)))

	s.Extend(5)
	assert.Len(t, s.Points, 15)

	s.Reset()
	assert.Empty(t, s.Points)

	s.Extend(3)
	assert.Len(t, s.Points, 3)
}

func TestBatch(t *testing.T) {
	s := &Set{Points: []Point{
		{X: 0.5, Y: 0.25, Label: LabelA},
		{X: -0.5, Y: -0.75, Label: LabelB},
	}}

	batch := s.Batch()
	require.Len(t, batch, 2)
	assert.Equal(t, []float32{0.5, 0.25}, batch[0].Input)
	assert.Equal(t, []float32{1}, batch[0].Expected)
	assert.Equal(t, []float32{-0.5, -0.75}, batch[1].Input)
	assert.Equal(t, []float32{-1}, batch[1].Expected)
}
