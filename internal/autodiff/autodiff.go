// Package autodiff computes exact derivatives of user functions by automatic
// differentiation.
//
// Architecture:
//   - dual: the Value sum type (Scalar | Dual), arithmetic, and the Tape arena
//   - ops: elementary functions (trig, hyperbolic, exp/log, logistic, sqrt)
//   - Forward: dual-number propagation, one pass per input dimension
//   - Reverse: one recorded evaluation plus one backward sweep per function
//
// Both drivers return the same Result for the same functions and inputs, up
// to floating-point rounding.
//
// Usage:
//
//	f := func(x []dual.Value) dual.Value {
//	    // 3*x0 - 2*x1² + 5
//	    return dual.Add(dual.Sub(dual.Mul(3, x[0]), dual.Mul(2, dual.Pow(x[1], 2))), 5)
//	}
//	res, err := autodiff.Reverse([]autodiff.Func{f}, []float64{4, -3, 5}, nil)
//	// res.Values = [-1], res.Jacobian = [[3 12 0]]
package autodiff

import (
	"fmt"

	"github.com/born-ml/adiff/internal/parallel"
)

// Mode selects the differentiation driver.
type Mode int

// Supported modes.
const (
	ForwardMode Mode = iota
	ReverseMode
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ForwardMode:
		return "forward"
	case ReverseMode:
		return "reverse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config configures a Differentiator.
type Config struct {
	// Parallel fans independent passes out over goroutines: forward mode per
	// (function, dimension) pair, reverse mode per function. Every pass owns
	// its inputs and tape, so no state is shared between them.
	Parallel parallel.Config
}

// DefaultConfig returns a sequential configuration.
func DefaultConfig() Config {
	return Config{
		Parallel: parallel.Sequential(),
	}
}

// Differentiator runs forward- and reverse-mode differentiation with a fixed
// configuration. It holds no per-call state and is safe for concurrent use.
type Differentiator struct {
	config Config
}

// New creates a Differentiator with the given configuration.
func New(config Config) *Differentiator {
	return &Differentiator{config: config}
}

// Config returns the configuration of d.
func (d *Differentiator) Config() Config {
	return d.config
}

// Differentiate dispatches to Forward or Reverse.
func (d *Differentiator) Differentiate(mode Mode, fns []Func, x, seed []float64) (*Result, error) {
	switch mode {
	case ForwardMode:
		return d.Forward(fns, x, seed)
	case ReverseMode:
		return d.Reverse(fns, x, seed)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

var std = New(DefaultConfig())

// Forward differentiates fns at x in forward mode with the default
// configuration. See Differentiator.Forward.
func Forward(fns []Func, x, seed []float64) (*Result, error) {
	return std.Forward(fns, x, seed)
}

// Reverse differentiates fns at x in reverse mode with the default
// configuration. See Differentiator.Reverse.
func Reverse(fns []Func, x, seed []float64) (*Result, error) {
	return std.Reverse(fns, x, seed)
}

// ForwardScalar is Forward for a single scalar input.
func ForwardScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	return std.ForwardScalar(fns, x, seed)
}

// ReverseScalar is Reverse for a single scalar input.
func ReverseScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	return std.ReverseScalar(fns, x, seed)
}

// Derivative returns f(x) and f'(x) using forward mode.
func Derivative(f ScalarFunc, x float64) (value, derivative float64, err error) {
	res, err := ForwardScalar([]ScalarFunc{f}, x, nil)
	if err != nil {
		return 0, 0, err
	}
	value, derivative, _ = res.Scalar()
	return value, derivative, nil
}

// Gradient returns f(x) and ∇f(x) using reverse mode.
func Gradient(f Func, x []float64) (value float64, grad []float64, err error) {
	res, err := Reverse([]Func{f}, x, nil)
	if err != nil {
		return 0, nil, err
	}
	return res.Values[0], res.Row(0), nil
}
