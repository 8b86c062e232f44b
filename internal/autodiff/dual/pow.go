package dual

import (
	"fmt"
	"math"
)

// Pow returns a raised to the power b. Either operand may be a Scalar or a
// Dual.
//
// Local gradients:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), only when b is a Dual
//
// Failures:
//   - ErrDivisionByZero when a is zero and b is negative
//   - ErrDomain when the result is NaN for non-NaN operands (negative base,
//     fractional exponent)
//   - ErrDomain when b is a Dual and a <= 0, since ln(a) is undefined
func Pow(a, b any) Value {
	x, y, scalars := lift2("pow", a, b)
	base, exp := x.Real(), y.Real()
	res := checkedPow(base, exp)
	if scalars {
		return Scalar(res)
	}

	var gradBase, gradExp float64
	if exp != 0 {
		gradBase = exp * math.Pow(base, exp-1)
	}
	if _, tracked := y.(Dual); tracked {
		if base <= 0 {
			panic(&OpError{Op: "pow", Err: ErrDomain, Detail: fmt.Sprintf("base %v with tracked exponent", base)})
		}
		gradExp = res * math.Log(base)
	}

	return binary("pow", x, y, res, gradBase, gradExp)
}

func checkedPow(base, exp float64) float64 {
	if base == 0 && exp < 0 {
		panic(&OpError{Op: "pow", Err: ErrDivisionByZero, Detail: fmt.Sprintf("0 raised to %v", exp)})
	}
	res := math.Pow(base, exp)
	if math.IsNaN(res) && !math.IsNaN(base) && !math.IsNaN(exp) {
		panic(&OpError{Op: "pow", Err: ErrDomain, Detail: fmt.Sprintf("%v raised to %v", base, exp)})
	}
	return res
}
