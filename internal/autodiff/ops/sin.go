package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// sinOp: d(sin(x))/dx = cos(x).
var sinOp = unaryOp{
	name: "sin",
	f:    math.Sin,
	grad: func(x, _ float64) float64 { return math.Cos(x) },
}

// Sin returns the sine of x.
func Sin(x any) dual.Value {
	return sinOp.apply(x)
}
