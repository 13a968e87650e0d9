package matrix

import "github.com/pkg/errors"

// Matrix operation errors.
//
// Operations wrap these with the operand shapes, so compare with errors.Is.
var (
	ErrShapeMismatch        = errors.New("matrix shapes do not match")
	ErrElementCountMismatch = errors.New("matrices have different number of elements")
	ErrDimensionMismatch    = errors.New("left matrix columns do not equal right matrix rows")
	ErrInsufficientValues   = errors.New("not enough values to extend matrix")
	ErrIndexOutOfRange      = errors.New("matrix index out of range")
)

func shapeError(err error, op string, a, b *Matrix) error {
	return errors.Wrapf(err, "%s: %dx%d and %dx%d", op, a.rows, a.cols, b.rows, b.cols)
}
