package dual

// Neg returns -a.
//
// Local gradient: d(-a)/da = -1.
func Neg(a any) Value {
	switch x := Lift("neg", a).(type) {
	case Scalar:
		return -x
	case Dual:
		return Unary("neg", x, -x.real, -1)
	default:
		panic(Unsupported("neg", a))
	}
}
