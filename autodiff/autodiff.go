// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation of scalar and
// vector-input functions.
//
// Two modes are offered. Forward mode propagates dual numbers through the
// function once per input dimension. Reverse mode evaluates the function once
// while recording a tape, then sweeps it backward for all partials at once.
// Both return the same Result.
//
// Functions are written against Value with the arithmetic and elementary
// functions of this package. Operands may be Values or plain Go numbers.
//
// Example:
//
//	import "github.com/born-ml/adiff/autodiff"
//
//	func main() {
//	    // f(x) = 3*x0 - 2*x1² + 5
//	    f := func(x []autodiff.Value) autodiff.Value {
//	        return autodiff.Add(autodiff.Sub(autodiff.Mul(3, x[0]), autodiff.Mul(2, autodiff.Pow(x[1], 2))), 5)
//	    }
//
//	    res, err := autodiff.Reverse([]autodiff.Func{f}, []float64{4, -3, 5}, nil)
//	    // res.Values = [-1], res.Jacobian = [[3 12 0]]
//	}
package autodiff

import (
	"github.com/born-ml/adiff/internal/autodiff"
	"github.com/born-ml/adiff/internal/autodiff/dual"
	"github.com/born-ml/adiff/internal/parallel"
)

// Value is a number flowing through a differentiated function: a Scalar or
// a Dual.
type Value = dual.Value

// Scalar is a plain number that carries no derivative.
type Scalar = dual.Scalar

// Dual is a number paired with its derivative, optionally recorded on a Tape.
type Dual = dual.Dual

// Tape records the dependency graph of a reverse-mode evaluation.
type Tape = dual.Tape

// NodeID identifies a node recorded on a Tape.
type NodeID = dual.NodeID

// NoNode is the NodeID of an untaped Dual.
const NoNode = dual.NoNode

// Edge is a dependency of a recorded node with its local gradient.
type Edge = dual.Edge

// Gradients holds the result of a backward sweep, indexed by NodeID.
type Gradients = dual.Gradients

// OpError reports a failed operation on Values.
type OpError = dual.OpError

// Func is a function of a vector input.
type Func = autodiff.Func

// ScalarFunc is a function of a single input.
type ScalarFunc = autodiff.ScalarFunc

// Result holds function values, the Jacobian and, for seeded calls, the
// directional derivatives.
type Result = autodiff.Result

// Mode selects the differentiation driver.
type Mode = autodiff.Mode

// Supported modes.
const (
	ForwardMode = autodiff.ForwardMode
	ReverseMode = autodiff.ReverseMode
)

// Config configures a Differentiator.
type Config = autodiff.Config

// ParallelConfig controls how independent passes are spread over goroutines.
type ParallelConfig = parallel.Config

// Differentiator runs both modes with a fixed configuration.
type Differentiator = autodiff.Differentiator

// Errors returned by operations and drivers. Test with errors.Is.
var (
	ErrTypeMismatch   = dual.ErrTypeMismatch
	ErrDomain         = dual.ErrDomain
	ErrDivisionByZero = dual.ErrDivisionByZero
	ErrTapeMismatch   = dual.ErrTapeMismatch
	ErrStaleValue     = dual.ErrStaleValue

	ErrShapeMismatch = autodiff.ErrShapeMismatch
	ErrNoFunctions   = autodiff.ErrNoFunctions
	ErrNilFunction   = autodiff.ErrNilFunction
	ErrNilResult     = autodiff.ErrNilResult
	ErrUnknownMode   = autodiff.ErrUnknownMode
)

// DefaultConfig returns a sequential configuration.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// DefaultParallelConfig returns a parallel configuration sized to the CPU
// count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// New creates a Differentiator.
//
// Example:
//
//	d := autodiff.New(autodiff.Config{Parallel: autodiff.DefaultParallelConfig()})
//	res, err := d.Forward(fns, x, nil)
func New(config Config) *Differentiator {
	return autodiff.New(config)
}

// NewDual creates an untaped Dual.
func NewDual(real, deriv float64) Dual {
	return dual.New(real, deriv)
}

// NewTape creates a recording Tape.
func NewTape() *Tape {
	return dual.NewTape()
}

// Try runs fn and returns the *OpError it panics with, if any.
//
// Operations panic on failure so that expressions nest naturally. Try turns
// that back into an error when evaluating outside the drivers.
func Try(fn func()) error {
	return dual.Try(fn)
}

// Vectorize adapts a ScalarFunc to a Func reading x[0].
func Vectorize(f ScalarFunc) Func {
	return autodiff.Vectorize(f)
}

// Forward differentiates fns at x in forward mode.
// A non-nil seed must have len(x) entries and adds directional derivatives.
func Forward(fns []Func, x, seed []float64) (*Result, error) {
	return autodiff.Forward(fns, x, seed)
}

// Reverse differentiates fns at x in reverse mode.
// A non-nil seed must have len(x) entries and adds directional derivatives.
func Reverse(fns []Func, x, seed []float64) (*Result, error) {
	return autodiff.Reverse(fns, x, seed)
}

// ForwardScalar differentiates fns at the single input x in forward mode.
func ForwardScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	return autodiff.ForwardScalar(fns, x, seed)
}

// ReverseScalar differentiates fns at the single input x in reverse mode.
func ReverseScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	return autodiff.ReverseScalar(fns, x, seed)
}

// Derivative returns f(x) and f'(x).
func Derivative(f ScalarFunc, x float64) (value, derivative float64, err error) {
	return autodiff.Derivative(f, x)
}

// Gradient returns f(x) and ∇f(x).
func Gradient(f Func, x []float64) (value float64, grad []float64, err error) {
	return autodiff.Gradient(f, x)
}
