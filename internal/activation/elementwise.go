package activation

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/perceptron/internal/matrix"
)

// ReLU is the rectified linear unit: f(x) = max(0, x).
//
// The derivative is 0 for x < 0 and 1 otherwise, so it is 1 at exactly zero.
type ReLU struct{}

// Name implements Func.
func (ReLU) Name() string { return "relu" }

// Activate implements Func.
func (ReLU) Activate(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// Derivative implements Func.
func (ReLU) Derivative(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return 1
	})
}

// Identity passes its input through unchanged: f(x) = x, f'(x) = 1.
//
// With targets in {-1, 1} it turns training into a least-squares fit of
// the decision boundary.
type Identity struct{}

// Name implements Func.
func (Identity) Name() string { return "identity" }

// Activate implements Func.
func (Identity) Activate(x *matrix.Matrix) *matrix.Matrix {
	return x.Clone()
}

// Derivative implements Func.
func (Identity) Derivative(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(func(float32) float32 { return 1 })
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Name implements Func.
func (Sigmoid) Name() string { return "sigmoid" }

// Activate implements Func.
func (Sigmoid) Activate(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(sigmoid)
}

// Derivative implements Func: σ(x)(1 - σ(x)).
func (Sigmoid) Derivative(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(func(v float32) float32 {
		s := sigmoid(v)
		return s * (1 - s)
	})
}

func sigmoid(v float32) float32 {
	return 1 / (1 + math32.Exp(-v))
}

// Tanh is the hyperbolic tangent, squashing values into (-1, 1).
type Tanh struct{}

// Name implements Func.
func (Tanh) Name() string { return "tanh" }

// Activate implements Func.
func (Tanh) Activate(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(math32.Tanh)
}

// Derivative implements Func: 1 - tanh²(x).
func (Tanh) Derivative(x *matrix.Matrix) *matrix.Matrix {
	return x.Map(func(v float32) float32 {
		th := math32.Tanh(v)
		return 1 - th*th
	})
}
