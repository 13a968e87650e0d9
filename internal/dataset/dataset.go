// Package dataset generates the synthetic two-class dataset used to
// exercise the perceptron: points drawn uniformly from [-1, 1)² and
// labelled by which side of a straight line they fall on.
package dataset

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/born-ml/perceptron/internal/nn"
)

// Label is the class of a point.
type Label int

// Labels. A is above the line, B on or below it.
const (
	LabelA Label = iota
	LabelB
)

// String returns "A" or "B".
func (l Label) String() string {
	if l == LabelA {
		return "A"
	}
	return "B"
}

// Target returns the training target for the label: +1 for A, -1 for B.
func (l Label) Target() float32 {
	if l == LabelA {
		return 1
	}
	return -1
}

// Line is the classifier y = M*x + C.
type Line struct {
	M float32
	C float32
}

// RandomLine draws a line crossing the unit square. Slopes close to ±1 of
// the seed range are pushed towards steep lines.
func RandomLine(rng *rand.Rand) Line {
	seed := rng.Float32()*2 - 1

	m := seed
	if math32.Abs(seed) > 0.85 {
		m = math32.Pow(seed, 15) * 10
	}

	return Line{M: m, C: rng.Float32() - 0.5}
}

// Y returns the line's y at x.
func (l Line) Y(x float32) float32 {
	return l.M*x + l.C
}

// Classify labels (x, y) as A when it lies strictly above the line.
func (l Line) Classify(x, y float32) Label {
	if y > l.Y(x) {
		return LabelA
	}
	return LabelB
}

// Point is a labelled sample.
type Point struct {
	X, Y  float32
	Label Label
}

// Set is a collection of labelled points sharing one classifier line.
type Set struct {
	Line   Line
	Points []Point
	rng    *rand.Rand
}

// Generate creates a set of n random points labelled by line.
func Generate(n int, line Line, rng *rand.Rand) *Set {
	s := &Set{Line: line, rng: rng}
	s.Extend(n)
	return s
}

// Extend appends n fresh random points.
func (s *Set) Extend(n int) {
	for i := 0; i < n; i++ {
		x := s.rng.Float32()*2 - 1
		y := s.rng.Float32()*2 - 1
		s.Points = append(s.Points, Point{X: x, Y: y, Label: s.Line.Classify(x, y)})
	}
}

// Reset drops every point.
func (s *Set) Reset() {
	s.Points = s.Points[:0]
}

// Batch converts the points into training samples with targets ±1.
func (s *Set) Batch() []nn.TrainingBatch {
	batch := make([]nn.TrainingBatch, len(s.Points))
	for i, p := range s.Points {
		batch[i] = nn.TrainingBatch{
			Input:    []float32{p.X, p.Y},
			Expected: []float32{p.Label.Target()},
		}
	}
	return batch
}
