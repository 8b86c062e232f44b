package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// asinhOp: d(asinh(x))/dx = 1/√(x²+1).
var asinhOp = unaryOp{
	name: "asinh",
	f:    math.Asinh,
	grad: func(x, _ float64) float64 { return 1 / math.Sqrt(x*x+1) },
}

// acoshOp: d(acosh(x))/dx = 1/√(x²-1), defined for x >= 1.
var acoshOp = unaryOp{
	name:   "acosh",
	f:      math.Acosh,
	grad:   func(x, _ float64) float64 { return 1 / math.Sqrt(x*x-1) },
	domain: func(x float64) bool { return x >= 1 },
}

// atanhOp: d(atanh(x))/dx = 1/(1-x²). atanh(±1) is ±Inf.
var atanhOp = unaryOp{
	name:   "atanh",
	f:      math.Atanh,
	grad:   func(x, _ float64) float64 { return 1 / (1 - x*x) },
	domain: unitInterval,
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x any) dual.Value {
	return asinhOp.apply(x)
}

// Acosh returns the inverse hyperbolic cosine of x. It fails with
// dual.ErrDomain for x < 1.
func Acosh(x any) dual.Value {
	return acoshOp.apply(x)
}

// Atanh returns the inverse hyperbolic tangent of x. It fails with
// dual.ErrDomain for |x| > 1.
func Atanh(x any) dual.Value {
	return atanhOp.apply(x)
}
