// Package activation implements the activation functions applied to a
// layer's raw linear output during training.
//
// Every function is stateless and exposes the pair used by gradient
// descent:
//   - Activate: f(x)
//   - Derivative: f'(x), evaluated at the pre-activation input x
//
// Element-wise functions return a matrix of the input's shape from both
// methods. SoftMax couples all elements: its Derivative is a 1×n row over
// the flattened input, and the full n×n matrix is available from
// SoftMax.Jacobian.
//
// Example:
//
//	fn, err := activation.Lookup("relu")
//	y := fn.Activate(x)
//	dy := fn.Derivative(x)
package activation

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/matrix"
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = errors.New("unknown activation function")

// Func is an activation function together with its derivative.
type Func interface {
	// Name returns the registry name, e.g. "relu".
	Name() string

	// Activate applies the function to x.
	Activate(x *matrix.Matrix) *matrix.Matrix

	// Derivative evaluates the derivative at x.
	Derivative(x *matrix.Matrix) *matrix.Matrix
}

var registry = map[string]Func{
	ReLU{}.Name():     ReLU{},
	SoftMax{}.Name():  SoftMax{},
	Identity{}.Name(): Identity{},
	Sigmoid{}.Name():  Sigmoid{},
	Tanh{}.Name():     Tanh{},
}

// Lookup returns the activation function registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknown, "%q (known: %v)", name, Names())
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
