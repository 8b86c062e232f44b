package autodiff

import (
	"github.com/born-ml/adiff/internal/autodiff/dual"
	"github.com/born-ml/adiff/internal/parallel"
)

// Forward differentiates fns at x in forward mode.
//
// Each function is evaluated once on plain Scalars for its value, then once
// per input dimension j with x[j] seeded as a Dual of derivative 1 and every
// other entry left a Scalar. The derivative of that pass is ∂f/∂x_j. Cost is
// one evaluation per (function, dimension) pair plus one per function.
//
// With a non-nil seed, which must have len(x) entries, each row is also
// collapsed into Result.Directional.
func (d *Differentiator) Forward(fns []Func, x, seed []float64) (*Result, error) {
	if err := validate(fns, len(x), seed); err != nil {
		return nil, err
	}
	res := newResult(len(fns), len(x), false)
	cfg := d.config.Parallel

	err := parallel.ForErr(len(fns), func(i int) error {
		v, err := evaluate(fns[i], scalars(x))
		if err != nil {
			return passError(i, err)
		}
		res.Values[i] = v.Real()
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	dims := len(x)
	err = parallel.ForErr(len(fns)*dims, func(k int) error {
		i, j := k/dims, k%dims
		deriv, err := forwardPass(fns[i], x, j)
		if err != nil {
			return passError(i, err)
		}
		res.Jacobian[i][j] = deriv
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	res.applySeed(seed)
	return res, nil
}

// forwardPass evaluates f with only x[j] tracked and returns ∂f/∂x_j.
func forwardPass(f Func, x []float64, j int) (float64, error) {
	in := scalars(x)
	in[j] = dual.New(x[j], 1)

	v, err := evaluate(f, in)
	if err != nil {
		return 0, err
	}
	// A Scalar result does not depend on x[j].
	return dual.Derivative(v), nil
}

// ForwardScalar differentiates fns at the single input x in forward mode.
// One evaluation per function suffices. seed, if given, must have exactly one
// entry.
func (d *Differentiator) ForwardScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	vfns := vectorizeAll(fns)
	if err := validate(vfns, 1, seed); err != nil {
		return nil, err
	}
	res := newResult(len(fns), 1, true)

	err := parallel.ForErr(len(fns), func(i int) error {
		v, err := evaluate(vfns[i], []dual.Value{dual.New(x, 1)})
		if err != nil {
			return passError(i, err)
		}
		res.Values[i] = v.Real()
		res.Jacobian[i][0] = dual.Derivative(v)
		return nil
	}, d.config.Parallel)
	if err != nil {
		return nil, err
	}

	res.applySeed(seed)
	return res, nil
}
