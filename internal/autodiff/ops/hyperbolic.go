package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

var sinhOp = unaryOp{
	name: "sinh",
	f:    math.Sinh,
	grad: func(x, _ float64) float64 { return math.Cosh(x) },
}

var coshOp = unaryOp{
	name: "cosh",
	f:    math.Cosh,
	grad: func(x, _ float64) float64 { return math.Sinh(x) },
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x any) dual.Value {
	return sinhOp.apply(x)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x any) dual.Value {
	return coshOp.apply(x)
}
