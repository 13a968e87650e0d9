package matrix

import "github.com/pkg/errors"

// ExtendColumns appends one row built from values, growing the matrix from
// r×c to (r+1)×c. len(values) must be at least Cols(); any extra values are
// ignored.
func (m *Matrix) ExtendColumns(values []float32) (*Matrix, error) {
	if len(values) < m.cols {
		return nil, errors.Wrapf(ErrInsufficientValues, "extend columns: need %d values, got %d", m.cols, len(values))
	}

	out := make([]float32, 0, len(m.elements)+m.cols)
	out = append(out, m.elements...)
	out = append(out, values[:m.cols]...)

	return New(m.cols, m.rows+1, out), nil
}

// ExtendRows appends one column, placing values[i] at the end of row i and
// growing the matrix from r×c to r×(c+1). len(values) must be at least Rows().
//
// Extending a row vector with []float32{1} is the bias augmentation used by
// every layer.
func (m *Matrix) ExtendRows(values []float32) (*Matrix, error) {
	if len(values) < m.rows {
		return nil, errors.Wrapf(ErrInsufficientValues, "extend rows: need %d values, got %d", m.rows, len(values))
	}
	if len(m.elements) != m.rows*m.cols {
		return nil, errors.Wrap(ErrElementCountMismatch, "extend rows")
	}

	out := make([]float32, 0, len(m.elements)+m.rows)
	for row := 0; row < m.rows; row++ {
		out = append(out, m.elements[row*m.cols:(row+1)*m.cols]...)
		out = append(out, values[row])
	}

	return New(m.cols+1, m.rows, out), nil
}
