package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// sqrtOp: d(√x)/dx = 1/(2√x). The gradient at 0 is +Inf.
var sqrtOp = unaryOp{
	name:   "sqrt",
	f:      math.Sqrt,
	grad:   func(_, y float64) float64 { return 1 / (2 * y) },
	domain: nonNegative,
}

// Sqrt returns the square root of x. It fails with dual.ErrDomain for x < 0.
func Sqrt(x any) dual.Value {
	return sqrtOp.apply(x)
}
