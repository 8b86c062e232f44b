// Package ops implements the elementary functions of the automatic
// differentiation engine on dual.Value.
//
// Every function follows the same contract:
//   - A Scalar argument returns a Scalar computed by the math package, with no
//     derivative or tape state
//   - A Dual argument returns a Dual with real part f(x), derivative
//     f'(x) * x.Derivative(), and one edge (x, f'(x)) when x is taped
//   - Any other argument type panics with dual.ErrTypeMismatch
//   - An argument outside the function's real domain panics with
//     dual.ErrDomain before anything is computed
//
// Supported functions:
//   - Sin, Cos, Tan
//   - Asin, Acos, Atan
//   - Sinh, Cosh, Tanh
//   - Asinh, Acosh, Atanh
//   - Exp, Log, LogBase, Logistic, Sqrt
package ops

import "github.com/born-ml/adiff/internal/autodiff/dual"

// unaryOp describes a differentiable function of one real argument.
type unaryOp struct {
	name string

	// f computes the function value.
	f func(x float64) float64

	// grad computes f'(x) given x and y = f(x).
	grad func(x, y float64) float64

	// domain reports whether x is a valid argument. Nil means every real.
	domain func(x float64) bool
}

// apply evaluates op on x.
func (op *unaryOp) apply(x any) dual.Value {
	v := dual.Lift(op.name, x)
	r := v.Real()
	if op.domain != nil && !op.domain(r) {
		panic(dual.DomainError(op.name, r))
	}
	y := op.f(r)

	switch v := v.(type) {
	case dual.Scalar:
		return dual.Scalar(y)
	case dual.Dual:
		return dual.Unary(op.name, v, y, op.grad(r, y))
	default:
		panic(dual.Unsupported(op.name, x))
	}
}

// Domain predicates shared by several functions.

func positive(x float64) bool { return x > 0 }

func nonNegative(x float64) bool { return x >= 0 }

func unitInterval(x float64) bool { return x >= -1 && x <= 1 }
