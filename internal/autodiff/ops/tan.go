package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// tanOp: d(tan(x))/dx = sec²(x) = 1/cos²(x).
var tanOp = unaryOp{
	name: "tan",
	f:    math.Tan,
	grad: func(x, _ float64) float64 {
		c := math.Cos(x)
		return 1 / (c * c)
	},
}

// Tan returns the tangent of x.
func Tan(x any) dual.Value {
	return tanOp.apply(x)
}
