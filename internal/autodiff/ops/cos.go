package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// cosOp: d(cos(x))/dx = -sin(x).
var cosOp = unaryOp{
	name: "cos",
	f:    math.Cos,
	grad: func(x, _ float64) float64 { return -math.Sin(x) },
}

// Cos returns the cosine of x.
func Cos(x any) dual.Value {
	return cosOp.apply(x)
}
