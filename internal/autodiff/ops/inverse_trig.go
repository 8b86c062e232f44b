package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// asinOp: d(asin(x))/dx = 1/√(1-x²), infinite at ±1.
var asinOp = unaryOp{
	name:   "asin",
	f:      math.Asin,
	grad:   func(x, _ float64) float64 { return 1 / math.Sqrt(1-x*x) },
	domain: unitInterval,
}

// acosOp: d(acos(x))/dx = -1/√(1-x²).
var acosOp = unaryOp{
	name:   "acos",
	f:      math.Acos,
	grad:   func(x, _ float64) float64 { return -1 / math.Sqrt(1-x*x) },
	domain: unitInterval,
}

// atanOp: d(atan(x))/dx = 1/(1+x²).
var atanOp = unaryOp{
	name: "atan",
	f:    math.Atan,
	grad: func(x, _ float64) float64 { return 1 / (1 + x*x) },
}

// Asin returns the arcsine of x. It fails with dual.ErrDomain for |x| > 1.
func Asin(x any) dual.Value {
	return asinOp.apply(x)
}

// Acos returns the arccosine of x. It fails with dual.ErrDomain for |x| > 1.
func Acos(x any) dual.Value {
	return acosOp.apply(x)
}

// Atan returns the arctangent of x.
func Atan(x any) dual.Value {
	return atanOp.apply(x)
}
