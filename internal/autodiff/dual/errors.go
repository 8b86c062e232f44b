package dual

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTypeMismatch   = errors.New("unsupported operand type")
	ErrDomain         = errors.New("math domain error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrTapeMismatch   = errors.New("operands recorded on different tapes")
	ErrStaleValue     = errors.New("value belongs to a cleared tape")
)

// OpError reports a failed operation on Values.
//
// Operations raise it with panic so that function bodies can be written as
// plain nested expressions. The differentiation drivers and Try recover it
// and return it as an ordinary error.
type OpError struct {
	Op     string // Operation that failed (e.g. "div", "log")
	Err    error  // One of the sentinel errors above
	Detail string // Offending operand or value
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the sentinel error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Unsupported builds the type-mismatch error for operand x of op.
func Unsupported(op string, x any) *OpError {
	return &OpError{Op: op, Err: ErrTypeMismatch, Detail: fmt.Sprintf("%T", x)}
}

// DomainError builds the domain error for op evaluated at x.
func DomainError(op string, x float64) *OpError {
	return &OpError{Op: op, Err: ErrDomain, Detail: fmt.Sprintf("argument %v", x)}
}

// Try runs fn and converts an *OpError panic into a returned error.
// Any other panic is propagated.
func Try(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		opErr, ok := r.(*OpError)
		if !ok {
			panic(r)
		}
		err = opErr
	}()
	fn()
	return nil
}
