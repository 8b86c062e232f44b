package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// logOp: d(ln(x))/dx = 1/x.
//
// Zero and negative arguments are rejected rather than returning -Inf or NaN.
var logOp = unaryOp{
	name:   "log",
	f:      math.Log,
	grad:   func(x, _ float64) float64 { return 1 / x },
	domain: positive,
}

// Log returns the natural logarithm of x. It fails with dual.ErrDomain for
// x <= 0.
func Log(x any) dual.Value {
	return logOp.apply(x)
}

// LogBase returns the logarithm of x in the given base.
//
// The base must be a plain number: a Dual base fails with
// dual.ErrTypeMismatch. x <= 0, base <= 0 and base == 1 fail with
// dual.ErrDomain.
//
// Local gradient: d(log_b(x))/dx = 1/(x ln b).
func LogBase(x, base any) dual.Value {
	const name = "logbase"

	v := dual.Lift(name, x)
	b, ok := dual.Lift(name, base).(dual.Scalar)
	if !ok {
		panic(dual.Unsupported(name, base))
	}
	lnb := math.Log(float64(b))
	if b <= 0 || b == 1 {
		panic(dual.DomainError(name, float64(b)))
	}

	op := unaryOp{
		name:   name,
		f:      func(x float64) float64 { return math.Log(x) / lnb },
		grad:   func(x, _ float64) float64 { return 1 / x / lnb },
		domain: positive,
	}
	return op.apply(v)
}
