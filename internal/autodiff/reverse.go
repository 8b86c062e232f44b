package autodiff

import (
	"github.com/born-ml/adiff/internal/autodiff/dual"
	"github.com/born-ml/adiff/internal/parallel"
)

// Reverse differentiates fns at x in reverse mode.
//
// Per function the pass is strictly sequential:
//  1. Seed every x[j] as a leaf on a fresh tape
//  2. Evaluate the function once, recording the dependency graph
//  3. Sweep the tape backward once from the result
//  4. Read ∂f/∂x_j off the leaves and drop the tape
//
// All partials of a function come from one evaluation regardless of len(x).
// Seed handling matches Forward.
func (d *Differentiator) Reverse(fns []Func, x, seed []float64) (*Result, error) {
	if err := validate(fns, len(x), seed); err != nil {
		return nil, err
	}
	return d.reverse(fns, x, seed, false)
}

// ReverseScalar differentiates fns at the single input x in reverse mode.
func (d *Differentiator) ReverseScalar(fns []ScalarFunc, x float64, seed []float64) (*Result, error) {
	vfns := vectorizeAll(fns)
	if err := validate(vfns, 1, seed); err != nil {
		return nil, err
	}
	return d.reverse(vfns, []float64{x}, seed, true)
}

func (d *Differentiator) reverse(fns []Func, x, seed []float64, scalarInput bool) (*Result, error) {
	res := newResult(len(fns), len(x), scalarInput)

	err := parallel.ForErr(len(fns), func(i int) error {
		value, err := reversePass(fns[i], x, res.Jacobian[i])
		if err != nil {
			return passError(i, err)
		}
		res.Values[i] = value
		return nil
	}, d.config.Parallel)
	if err != nil {
		return nil, err
	}

	res.applySeed(seed)
	return res, nil
}

// reversePass evaluates f once on a fresh tape and writes ∂f/∂x_j into
// grad[j]. It returns f(x).
func reversePass(f Func, x, grad []float64) (float64, error) {
	tape := dual.NewTape()
	leaves := make([]dual.Dual, len(x))
	in := make([]dual.Value, len(x))
	for j, xj := range x {
		leaves[j] = tape.Variable(xj, 0)
		in[j] = leaves[j]
	}

	root, err := evaluate(f, in)
	if err != nil {
		return 0, err
	}

	out, ok := root.(dual.Dual)
	if !ok || !out.Tracked() {
		// The result does not depend on any leaf.
		return root.Real(), nil
	}
	if out.Tape() != tape {
		return 0, &dual.OpError{Op: "reverse", Err: dual.ErrTapeMismatch}
	}

	grads := tape.Backward(out.Node())
	for j, leaf := range leaves {
		grad[j] = grads.Of(leaf)
	}
	return out.Real(), nil
}
