package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// tanhOp: d(tanh(x))/dx = 1/cosh²(x).
var tanhOp = unaryOp{
	name: "tanh",
	f:    math.Tanh,
	grad: func(x, _ float64) float64 {
		c := math.Cosh(x)
		return 1 / (c * c)
	},
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x any) dual.Value {
	return tanhOp.apply(x)
}
