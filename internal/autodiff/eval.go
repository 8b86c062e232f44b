package autodiff

import (
	"fmt"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

// Func is a function of a vector input. The driver decides which entries are
// plain Scalars and which are Duals, so the body must accept both; writing it
// with dual and ops functions takes care of that.
type Func func(x []dual.Value) dual.Value

// ScalarFunc is a function of a single input.
type ScalarFunc func(x dual.Value) dual.Value

// Vectorize adapts a ScalarFunc to a Func reading x[0].
func Vectorize(f ScalarFunc) Func {
	if f == nil {
		return nil
	}
	return func(x []dual.Value) dual.Value {
		return f(x[0])
	}
}

// vectorizeAll adapts every function of fns.
func vectorizeAll(fns []ScalarFunc) []Func {
	out := make([]Func, len(fns))
	for i, f := range fns {
		out[i] = Vectorize(f)
	}
	return out
}

// evaluate calls f on x, turning an operation failure into an error.
func evaluate(f Func, x []dual.Value) (v dual.Value, err error) {
	err = dual.Try(func() {
		v = f(x)
	})
	if err == nil && v == nil {
		err = ErrNilResult
	}
	return v, err
}

// scalars lifts x into plain Scalars.
func scalars(x []float64) []dual.Value {
	in := make([]dual.Value, len(x))
	for i, xi := range x {
		in[i] = dual.Scalar(xi)
	}
	return in
}

// validate checks the arguments of a driver call before anything is evaluated.
func validate(fns []Func, dims int, seed []float64) error {
	if len(fns) == 0 {
		return ErrNoFunctions
	}
	for i, f := range fns {
		if f == nil {
			return fmt.Errorf("function %d: %w", i, ErrNilFunction)
		}
	}
	if seed != nil && len(seed) != dims {
		return fmt.Errorf("%w: seed has %d entries, value has %d", ErrShapeMismatch, len(seed), dims)
	}
	return nil
}

// passError annotates err with the index of the function that raised it.
func passError(fn int, err error) error {
	return fmt.Errorf("function %d: %w", fn, err)
}
