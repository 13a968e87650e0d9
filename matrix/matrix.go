// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API of the dense float32 matrix used
// by the perceptron network.
//
// Elements are stored row-major and every operation returns a new matrix:
//
//	a := matrix.New(3, 2, []float32{0, 2, 3, 1, 4, 6}) // 2 rows × 3 cols
//	b := matrix.New(2, 3, []float32{1, 0, 0, 1, 1, 1})
//	c, err := a.MatMul(b) // 2×2
//
// Shape failures are returned as errors wrapping the sentinels below; test
// them with errors.Is.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/matrix"
)

// Matrix is a dense row-major matrix of float32 values.
type Matrix = matrix.Matrix

// Errors.
var (
	ErrShapeMismatch        = matrix.ErrShapeMismatch
	ErrElementCountMismatch = matrix.ErrElementCountMismatch
	ErrDimensionMismatch    = matrix.ErrDimensionMismatch
	ErrInsufficientValues   = matrix.ErrInsufficientValues
	ErrIndexOutOfRange      = matrix.ErrIndexOutOfRange
)

// New creates a cols×rows matrix over elements without copying or
// validating them.
func New(cols, rows int, elements []float32) *Matrix {
	return matrix.New(cols, rows, elements)
}

// FromSlice creates a matrix from a copy of elements, failing with
// ErrShapeMismatch when len(elements) != cols*rows.
func FromSlice(cols, rows int, elements []float32) (*Matrix, error) {
	return matrix.FromSlice(cols, rows, elements)
}

// FromVec creates a single-row matrix.
func FromVec(elements []float32) *Matrix {
	return matrix.FromVec(elements)
}

// Zeros creates a zero-filled matrix.
func Zeros(cols, rows int) *Matrix {
	return matrix.Zeros(cols, rows)
}

// Identity creates an n×n identity matrix.
func Identity(n int) *Matrix {
	return matrix.Identity(n)
}

// FromDense converts a gonum matrix.
func FromDense(d mat.Matrix) *Matrix {
	return matrix.FromDense(d)
}
