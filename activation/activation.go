// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the activation functions a network can be
// trained with.
package activation

import (
	"github.com/born-ml/perceptron/internal/activation"
)

// Func is an activation function together with its derivative.
type Func = activation.Func

// Activation functions.
type (
	ReLU     = activation.ReLU
	SoftMax  = activation.SoftMax
	Identity = activation.Identity
	Sigmoid  = activation.Sigmoid
	Tanh     = activation.Tanh
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = activation.ErrUnknown

// Lookup returns the activation function registered under name.
//
// Example:
//
//	fn, err := activation.Lookup("softmax")
func Lookup(name string) (Func, error) {
	return activation.Lookup(name)
}

// Names returns the registered names in sorted order.
func Names() []string {
	return activation.Names()
}
