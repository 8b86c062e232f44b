// Package dual implements the value type shared by forward- and reverse-mode
// automatic differentiation.
//
// A Value is one of exactly two cases:
//   - Scalar: a plain float64 with no derivative or graph state
//   - Dual: a real part, a forward-mode derivative, and an optional node on a Tape
//
// Arithmetic on two Scalars stays a Scalar, so constant sub-expressions cost
// nothing. As soon as one operand is a Dual the result is a Dual whose
// derivative follows the chain rule and, when the operand lives on a recording
// Tape, whose local gradients are recorded as edges for the backward pass.
//
// Example:
//
//	tape := dual.NewTape()
//	x := tape.Variable(3, 1)
//	y := dual.Mul(x, x) // y = x², dy/dx = 6
//	grads := tape.Backward(y.(dual.Dual).Node())
//	fmt.Println(grads.Of(x)) // 6
package dual

import "fmt"

// Value is either a Scalar or a Dual. The interface is sealed.
type Value interface {
	// Real returns the underlying numeric value.
	Real() float64

	value()
}

// Scalar is a plain number. Operations on Scalars never build derivative state.
type Scalar float64

// Real returns s as a float64.
func (s Scalar) Real() float64 { return float64(s) }

func (Scalar) value() {}

// String formats the scalar like a float64.
func (s Scalar) String() string { return fmt.Sprint(float64(s)) }

// Dual is a value paired with its derivative and, optionally, a node on a Tape.
//
// The derivative field carries the forward-mode directional derivative. The
// tape node is what reverse mode walks; its edges live in the tape arena, not
// on the value, and are fixed once the value is created.
type Dual struct {
	real  float64
	deriv float64
	tape  *Tape
	id    NodeID
	gen   uint32
}

// New creates a Dual that is not attached to any tape.
// Use it for forward mode, where only the derivative field matters.
func New(real, deriv float64) Dual {
	return Dual{real: real, deriv: deriv, id: NoNode}
}

// Real returns the real component.
func (d Dual) Real() float64 { return d.real }

func (Dual) value() {}

// Derivative returns the forward-mode derivative component.
func (d Dual) Derivative() float64 { return d.deriv }

// Node returns the tape node of d, or NoNode if d was not recorded.
func (d Dual) Node() NodeID { return d.id }

// Tape returns the tape d was recorded on, or nil.
func (d Dual) Tape() *Tape { return d.tape }

// Tracked reports whether d has a node on a tape.
func (d Dual) Tracked() bool { return d.tape != nil && d.id != NoNode }

// String formats d as "real+derivϵ".
func (d Dual) String() string {
	return fmt.Sprintf("(%v%+vϵ)", d.real, d.deriv)
}

// Lift converts x into a Value. Values pass through unchanged, Go numeric
// types become Scalars. Any other type panics with an *OpError wrapping
// ErrTypeMismatch, naming op and the offending type.
func Lift(op string, x any) Value {
	switch v := x.(type) {
	case Scalar:
		return v
	case Dual:
		return v
	case *Dual:
		if v == nil {
			break
		}
		return *v
	case float64:
		return Scalar(v)
	case float32:
		return Scalar(v)
	case int:
		return Scalar(v)
	case int8:
		return Scalar(v)
	case int16:
		return Scalar(v)
	case int32:
		return Scalar(v)
	case int64:
		return Scalar(v)
	case uint:
		return Scalar(v)
	case uint8:
		return Scalar(v)
	case uint16:
		return Scalar(v)
	case uint32:
		return Scalar(v)
	case uint64:
		return Scalar(v)
	}
	panic(Unsupported(op, x))
}

// Derivative returns the forward-mode derivative of v: the Dual's derivative
// component, or 0 for a Scalar.
func Derivative(v Value) float64 {
	if d, ok := v.(Dual); ok {
		return d.deriv
	}
	return 0
}
