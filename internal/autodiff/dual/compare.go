package dual

// Comparisons look at real parts only. They carry no derivative and never
// record edges.

// Less reports whether a < b.
func Less(a, b any) bool {
	x, y, _ := lift2("lt", a, b)
	return x.Real() < y.Real()
}

// Greater reports whether a > b.
func Greater(a, b any) bool {
	x, y, _ := lift2("gt", a, b)
	return x.Real() > y.Real()
}

// LessEqual reports whether a <= b.
func LessEqual(a, b any) bool {
	x, y, _ := lift2("le", a, b)
	return x.Real() <= y.Real()
}

// GreaterEqual reports whether a >= b.
func GreaterEqual(a, b any) bool {
	x, y, _ := lift2("ge", a, b)
	return x.Real() >= y.Real()
}

// Equal reports whether a and b have equal real parts.
func Equal(a, b any) bool {
	x, y, _ := lift2("eq", a, b)
	return x.Real() == y.Real()
}
