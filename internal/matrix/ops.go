package matrix

import "github.com/pkg/errors"

// Map returns a same-shape matrix with f applied to every element.
func (m *Matrix) Map(f func(float32) float32) *Matrix {
	out := make([]float32, len(m.elements))
	for i, v := range m.elements {
		out[i] = f(v)
	}
	return New(m.cols, m.rows, out)
}

// Add returns the element-wise sum a + b.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	return m.zip("add", b, func(x, y float32) float32 { return x + y })
}

// Sub returns the element-wise difference, computed as a + (b * -1).
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	out, err := m.Add(b.Scale(-1))
	if err != nil {
		return nil, errors.WithMessage(err, "sub")
	}
	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
func (m *Matrix) Hadamard(b *Matrix) (*Matrix, error) {
	return m.zip("hadamard", b, func(x, y float32) float32 { return x * y })
}

// zip applies f pairwise after the shape and element-count checks shared by
// every element-wise binary operation.
func (m *Matrix) zip(op string, b *Matrix, f func(x, y float32) float32) (*Matrix, error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, shapeError(ErrShapeMismatch, op, m, b)
	}
	if len(m.elements) != len(b.elements) {
		return nil, errors.Wrapf(ErrElementCountMismatch, "%s: %d and %d elements", op, len(m.elements), len(b.elements))
	}

	out := make([]float32, len(m.elements))
	for i := range m.elements {
		out[i] = f(m.elements[i], b.elements[i])
	}
	return New(m.cols, m.rows, out), nil
}

// Scale multiplies every element by s.
func (m *Matrix) Scale(s float32) *Matrix {
	return m.Map(func(v float32) float32 { return v * s })
}

// Transpose returns the transposed matrix (rows and cols swapped).
func (m *Matrix) Transpose() *Matrix {
	out := make([]float32, 0, len(m.elements))
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			out = append(out, m.elements[row*m.cols+col])
		}
	}
	return New(m.rows, m.cols, out)
}

// MatMul returns the matrix product a · b with shape (a.Rows(), b.Cols()).
func (m *Matrix) MatMul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, shapeError(ErrDimensionMismatch, "matmul", m, b)
	}
	if len(m.elements) != m.rows*m.cols || len(b.elements) != b.rows*b.cols {
		return nil, errors.Wrap(ErrElementCountMismatch, "matmul")
	}

	out := make([]float32, 0, m.rows*b.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < b.cols; col++ {
			var sum float32
			for k := 0; k < m.cols; k++ {
				sum += m.elements[row*m.cols+k] * b.elements[k*b.cols+col]
			}
			out = append(out, sum)
		}
	}
	return New(b.cols, m.rows, out), nil
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float32 {
	var sum float32
	for _, v := range m.elements {
		sum += v
	}
	return sum
}

// SameShape reports whether o has the same rows and cols.
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols
}
