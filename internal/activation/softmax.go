package activation

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/perceptron/internal/matrix"
)

// SoftMax normalizes exponentials over all elements of a matrix, treated as
// one flat vector: f(x)_i = exp(x_i) / Σ_j exp(x_j).
//
// No max-shift is applied, so large inputs overflow to +Inf.
type SoftMax struct{}

// Name implements Func.
func (SoftMax) Name() string { return "softmax" }

// Activate implements Func. The result keeps the input's shape.
func (SoftMax) Activate(x *matrix.Matrix) *matrix.Matrix {
	exp := x.Map(math32.Exp)
	sum := exp.Sum()
	return exp.Map(func(v float32) float32 { return v / sum })
}

// Derivative implements Func.
//
// Let y be softmax(x) flattened to a 1×n row and Ỹ the n×n matrix whose
// every row is y. The result is the 1×n row y · (I - Ỹ), i.e.
// d_j = y_j - y_j Σ_i y_i, which is zero up to rounding since y sums to 1.
// For a 1×n input it has the shape of the input.
func (s SoftMax) Derivative(x *matrix.Matrix) *matrix.Matrix {
	y := matrix.FromVec(s.Activate(x).Elements())
	if y.Cols() == 0 {
		return y
	}
	return must(y.MatMul(complement(y)))
}

// Jacobian returns the n×n matrix J[i][j] = y_i (δ_ij - y_j) of softmax at
// x flattened to n elements, computed as diag(y) · (I - Ỹ).
func (s SoftMax) Jacobian(x *matrix.Matrix) *matrix.Matrix {
	y := matrix.FromVec(s.Activate(x).Elements())
	n := y.Cols()
	if n == 0 {
		return matrix.Zeros(0, 0)
	}

	diag := matrix.Zeros(n, n)
	for i, v := range y.Elements() {
		if err := diag.Set(i, i, v); err != nil {
			panic(err)
		}
	}

	return must(diag.MatMul(complement(y)))
}

// complement returns I - Ỹ for the 1×n row y, where every row of Ỹ is y.
func complement(y *matrix.Matrix) *matrix.Matrix {
	n := y.Cols()
	replicated := y
	for i := 1; i < n; i++ {
		replicated = must(replicated.ExtendColumns(y.Elements()))
	}
	return must(matrix.Identity(n).Sub(replicated))
}

// must unwraps matrix results whose shapes are constructed locally and
// cannot mismatch.
func must(m *matrix.Matrix, err error) *matrix.Matrix {
	if err != nil {
		panic(err)
	}
	return m
}
