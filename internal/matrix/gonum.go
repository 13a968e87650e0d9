package matrix

import "gonum.org/v1/gonum/mat"

// ToDense converts m into a float64 gonum matrix. m must not be empty;
// gonum rejects zero-sized matrices.
func (m *Matrix) ToDense() *mat.Dense {
	data := make([]float64, len(m.elements))
	for i, v := range m.elements {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense converts any gonum matrix into a Matrix, narrowing to float32.
func FromDense(d mat.Matrix) *Matrix {
	rows, cols := d.Dims()
	out := make([]float32, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, float32(d.At(r, c)))
		}
	}
	return New(cols, rows, out)
}
