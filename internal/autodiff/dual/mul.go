package dual

// Mul returns a * b.
//
// Local gradients (product rule):
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func Mul(a, b any) Value {
	x, y, scalars := lift2("mul", a, b)
	prod := x.Real() * y.Real()
	if scalars {
		return Scalar(prod)
	}
	return binary("mul", x, y, prod, y.Real(), x.Real())
}
