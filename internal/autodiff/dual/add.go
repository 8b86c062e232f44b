package dual

// Add returns a + b.
//
// Local gradients:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func Add(a, b any) Value {
	x, y, scalars := lift2("add", a, b)
	sum := x.Real() + y.Real()
	if scalars {
		return Scalar(sum)
	}
	return binary("add", x, y, sum, 1, 1)
}
