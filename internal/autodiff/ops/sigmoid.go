package ops

import (
	"math"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// logisticOp: σ(x) = 1 / (1 + e^-x).
//
// Derivative in exponential form: σ'(x) = e^x / (1 + e^x)², evaluated as
// e^-x / (1 + e^-x)² for x >= 0 so that neither form overflows.
var logisticOp = unaryOp{
	name: "logistic",
	f: func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	},
	grad: func(x, _ float64) float64 {
		e := math.Exp(-math.Abs(x))
		return e / ((1 + e) * (1 + e))
	},
}

// Logistic returns the logistic sigmoid of x.
func Logistic(x any) dual.Value {
	return logisticOp.apply(x)
}
