// Package matrix implements a dense two-dimensional float32 matrix.
//
// Elements are stored row-major in a flat slice: the element at (col, row)
// lives at index row*cols + col. Every operation except Set returns a new
// Matrix and leaves its operands untouched.
//
// Shape problems are reported as errors, never panics:
//   - ErrShapeMismatch: element-wise operands with different rows or cols
//   - ErrElementCountMismatch: flattened lengths differ although the shapes agree
//   - ErrDimensionMismatch: a.Cols() != b.Rows() in MatMul
//   - ErrInsufficientValues: too few values handed to an extend operation
//   - ErrIndexOutOfRange: Get/Set outside the matrix
//
// A Matrix is not safe for concurrent mutation.
package matrix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is a dense row-major matrix of float32 values.
type Matrix struct {
	cols     int
	rows     int
	elements []float32
}

// New creates a matrix with the given number of columns and rows.
//
// The caller guarantees len(elements) == cols*rows; the slice is used as is
// (no copy). Use FromSlice for a validated constructor.
//
// Example:
//
//	m := matrix.New(3, 2, []float32{0, 2, 3, 1, 4, 6}) // 2 rows, 3 cols
func New(cols, rows int, elements []float32) *Matrix {
	return &Matrix{
		cols:     cols,
		rows:     rows,
		elements: elements,
	}
}

// FromSlice creates a matrix from a copy of elements, checking that the
// element count matches cols*rows.
func FromSlice(cols, rows int, elements []float32) (*Matrix, error) {
	if cols < 0 || rows < 0 || len(elements) != cols*rows {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %dx%d requires %d elements, but got %d",
			rows, cols, cols*rows, len(elements))
	}

	data := make([]float32, len(elements))
	copy(data, elements)

	return New(cols, rows, data), nil
}

// FromVec creates a single-row matrix (a row vector) holding elements.
func FromVec(elements []float32) *Matrix {
	return New(len(elements), 1, elements)
}

// Zeros creates a cols×rows matrix filled with zeros.
func Zeros(cols, rows int) *Matrix {
	return New(cols, rows, make([]float32, cols*rows))
}

// Identity creates an n×n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.elements[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Len returns the number of stored elements.
func (m *Matrix) Len() int {
	return len(m.elements)
}

// Elements returns a copy of the row-major element slice.
func (m *Matrix) Elements() []float32 {
	out := make([]float32, len(m.elements))
	copy(out, m.elements)
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return New(m.cols, m.rows, m.Elements())
}

// Get returns the element at (col, row).
func (m *Matrix) Get(col, row int) (float32, error) {
	index, err := m.index(col, row)
	if err != nil {
		return 0, err
	}
	return m.elements[index], nil
}

// Set overwrites the element at (col, row) in place.
func (m *Matrix) Set(col, row int, value float32) error {
	index, err := m.index(col, row)
	if err != nil {
		return err
	}
	m.elements[index] = value
	return nil
}

func (m *Matrix) index(col, row int) (int, error) {
	index := row*m.cols + col
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows || index >= len(m.elements) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "(col %d, row %d) in %dx%d", col, row, m.rows, m.cols)
	}
	return index, nil
}

// Equal reports whether o has the same shape and exactly the same elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.cols != o.cols || m.rows != o.rows || len(m.elements) != len(o.elements) {
		return false
	}
	for i, v := range m.elements {
		if v != o.elements[i] {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line with two decimals:
//
//	| 0.00 2.00 3.00 |
//	| 1.00 4.00 6.00 |
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, e := range m.elements {
		if i != 0 && m.cols != 0 && i%m.cols == 0 {
			sb.WriteString(" |\n|")
		}
		fmt.Fprintf(&sb, " %.2f", e)
	}
	sb.WriteString(" |")
	return sb.String()
}
