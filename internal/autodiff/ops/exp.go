package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// expOp: d(e^x)/dx = e^x, which is the output itself.
var expOp = unaryOp{
	name: "exp",
	f:    math.Exp,
	grad: func(_, y float64) float64 { return y },
}

// Exp returns e raised to the power x.
func Exp(x any) dual.Value {
	return expOp.apply(x)
}
