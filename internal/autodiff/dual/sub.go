package dual

// Sub returns a - b.
//
// Local gradients:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func Sub(a, b any) Value {
	x, y, scalars := lift2("sub", a, b)
	diff := x.Real() - y.Real()
	if scalars {
		return Scalar(diff)
	}
	return binary("sub", x, y, diff, 1, -1)
}
