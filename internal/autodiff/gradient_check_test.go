package autodiff_test

import (
	"testing"

	"github.com/born-ml/adiff/internal/autodiff"
	"github.com/born-ml/adiff/internal/autodiff/dual"
	"github.com/born-ml/adiff/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// plain evaluates fns on float64 inputs in the form fd.Jacobian expects.
func plain(t *testing.T, fns []autodiff.Func) func(y, x []float64) {
	return func(y, x []float64) {
		in := make([]dual.Value, len(x))
		for j, xj := range x {
			in[j] = dual.Scalar(xj)
		}
		for i, f := range fns {
			var v dual.Value
			require.NoError(t, dual.Try(func() { v = f(in) }))
			y[i] = v.Real()
		}
	}
}

// numericalJacobian estimates the Jacobian of fns at x with central differences.
func numericalJacobian(t *testing.T, fns []autodiff.Func, x []float64) *mat.Dense {
	t.Helper()
	dst := mat.NewDense(len(fns), len(x), nil)
	fd.Jacobian(dst, plain(t, fns), x, &fd.JacobianSettings{
		Formula: fd.Central,
	})
	return dst
}

func TestGradientCheck(t *testing.T) {
	tests := []struct {
		name string
		fns  []autodiff.Func
		x    []float64
	}{
		{"linear", []autodiff.Func{linear}, []float64{4, -3, 5}},
		{"two functions", []autodiff.Func{halfSquareLog, product}, []float64{6, 4, -3}},
		{"mixed", []autodiff.Func{mixed, logSquare}, []float64{0.3, 0.6, 0.9}},
		{
			name: "softplus chain",
			fns: []autodiff.Func{func(x []dual.Value) dual.Value {
				return ops.Log(dual.Add(1, ops.Exp(dual.Sub(x[0], x[1]))))
			}},
			x: []float64{0.25, -1.5},
		},
		{
			name: "quotient of trig",
			fns: []autodiff.Func{func(x []dual.Value) dual.Value {
				return dual.Div(ops.Tan(x[0]), dual.Add(ops.Cos(x[1]), 2))
			}},
			x: []float64{0.4, 2.1},
		},
		{
			name: "inverse functions",
			fns: []autodiff.Func{func(x []dual.Value) dual.Value {
				return dual.Add(ops.Acos(x[0]), dual.Mul(ops.Asinh(x[1]), ops.Atanh(x[0])))
			}},
			x: []float64{0.35, -0.8},
		},
	}

	for _, tt := range tests {
		want := numericalJacobian(t, tt.fns, tt.x)

		for mode, run := range drivers() {
			t.Run(tt.name+"/"+mode, func(t *testing.T) {
				res, err := run(tt.fns, tt.x, nil)
				require.NoError(t, err)

				got := res.Dense()
				require.NotNil(t, got)
				assert.True(t, mat.EqualApprox(want, got, 1e-6),
					"autodiff:\n%v\nnumerical:\n%v",
					mat.Formatted(got), mat.Formatted(want))
			})
		}
	}
}
