package dual

// partial pairs a Dual operand with the local gradient of an operation's
// output with respect to it.
type partial struct {
	operand Dual
	grad    float64
}

// Unary builds the Dual produced by a one-operand operation on x.
// y is the real part of the result and grad is dy/dx at x.Real().
//
// The result carries derivative grad * x.Derivative() and, if x is tracked on
// a recording tape, a single edge (x, grad).
func Unary(op string, x Dual, y, grad float64) Dual {
	return apply(op, y, partial{operand: x, grad: grad})
}

// binary builds the Dual produced by a two-operand operation.
// At least one of a and b must be a Dual; Scalar operands contribute no
// derivative term and no edge.
func binary(op string, a, b Value, y, gradA, gradB float64) Dual {
	var buf [2]partial
	parts := buf[:0]
	if d, ok := a.(Dual); ok {
		parts = append(parts, partial{operand: d, grad: gradA})
	}
	if d, ok := b.(Dual); ok {
		parts = append(parts, partial{operand: d, grad: gradB})
	}
	return apply(op, y, parts...)
}

// apply computes the forward derivative by the chain rule and records one
// edge per tracked operand.
func apply(op string, y float64, parts ...partial) Dual {
	out := Dual{real: y, id: NoNode}
	for _, p := range parts {
		if p.operand.deriv != 0 {
			out.deriv += p.grad * p.operand.deriv
		}
	}

	tape := tapeOf(op, parts)
	if tape == nil {
		return out
	}
	out.tape = tape
	out.gen = tape.gen
	if !tape.recording {
		return out
	}

	var buf [2]Edge
	edges := buf[:0]
	for _, p := range parts {
		if p.operand.id != NoNode {
			edges = append(edges, Edge{Input: p.operand.id, Grad: p.grad})
		}
	}
	out.id = tape.push(edges)
	return out
}

// tapeOf returns the tape shared by the operands, or nil if none is taped.
// Operands from different tapes, or from a cleared tape, are rejected.
func tapeOf(op string, parts []partial) *Tape {
	var tape *Tape
	for _, p := range parts {
		t := p.operand.tape
		if t == nil {
			continue
		}
		if p.operand.gen != t.gen {
			panic(&OpError{Op: op, Err: ErrStaleValue})
		}
		if tape == nil {
			tape = t
			continue
		}
		if t != tape {
			panic(&OpError{Op: op, Err: ErrTapeMismatch})
		}
	}
	return tape
}

// lift2 lifts both operands of op, failing before any computation if either
// has an unsupported type. It reports whether both are Scalars.
func lift2(op string, a, b any) (Value, Value, bool) {
	x := Lift(op, a)
	y := Lift(op, b)
	_, xs := x.(Scalar)
	_, ys := y.(Scalar)
	return x, y, xs && ys
}
