package dual

// Div returns a / b. It fails with ErrDivisionByZero when b's real part is
// exactly zero, for Scalars as well as Duals.
//
// Local gradients:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
func Div(a, b any) Value {
	x, y, scalars := lift2("div", a, b)
	if y.Real() == 0 {
		panic(&OpError{Op: "div", Err: ErrDivisionByZero})
	}
	quo := x.Real() / y.Real()
	if scalars {
		return Scalar(quo)
	}
	return binary("div", x, y, quo, 1/y.Real(), -x.Real()/(y.Real()*y.Real()))
}
