package autodiff

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result holds the output of a driver call.
type Result struct {
	// Values holds f_i(x) for every function.
	Values []float64

	// Jacobian holds one row per function with ∂f_i/∂x_j for every input
	// dimension j.
	Jacobian [][]float64

	// Directional holds one directional derivative per function, the dot
	// product of its Jacobian row with the seed. Nil when no seed was given.
	Directional []float64

	scalarInput bool
}

func newResult(fns, dims int, scalarInput bool) *Result {
	jac := make([][]float64, fns)
	for i := range jac {
		jac[i] = make([]float64, dims)
	}
	return &Result{
		Values:      make([]float64, fns),
		Jacobian:    jac,
		scalarInput: scalarInput,
	}
}

// applySeed collapses every Jacobian row onto seed.
func (r *Result) applySeed(seed []float64) {
	if seed == nil {
		return
	}
	r.Directional = make([]float64, len(r.Jacobian))
	for i, row := range r.Jacobian {
		r.Directional[i] = floats.Dot(row, seed)
	}
}

// Seeded reports whether the result carries directional derivatives.
func (r *Result) Seeded() bool {
	return r.Directional != nil
}

// ScalarInput reports whether the call was made with a single scalar input.
func (r *Result) ScalarInput() bool {
	return r.scalarInput
}

// Scalar unwraps a result with exactly one function and one derivative:
// either a single input dimension, or a seed. ok is false for any other shape.
func (r *Result) Scalar() (value, derivative float64, ok bool) {
	if len(r.Values) != 1 {
		return 0, 0, false
	}
	if r.Seeded() {
		return r.Values[0], r.Directional[0], true
	}
	if len(r.Jacobian[0]) != 1 {
		return r.Values[0], 0, false
	}
	return r.Values[0], r.Jacobian[0][0], true
}

// Row returns the Jacobian row of function i.
func (r *Result) Row(i int) []float64 {
	return r.Jacobian[i]
}

// Dense returns the Jacobian as a functions × inputs matrix, or the
// directional derivatives as a column vector when the result is seeded.
// It returns nil when the matrix would be empty.
func (r *Result) Dense() *mat.Dense {
	if r.Seeded() {
		if len(r.Directional) == 0 {
			return nil
		}
		return mat.NewDense(len(r.Directional), 1, append([]float64(nil), r.Directional...))
	}

	rows := len(r.Jacobian)
	if rows == 0 || len(r.Jacobian[0]) == 0 {
		return nil
	}
	cols := len(r.Jacobian[0])
	data := make([]float64, 0, rows*cols)
	for _, row := range r.Jacobian {
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data)
}
