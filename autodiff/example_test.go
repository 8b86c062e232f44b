// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/adiff/autodiff"
)

func ExampleDerivative() {
	cube := func(x autodiff.Value) autodiff.Value {
		return autodiff.Pow(x, 3)
	}

	value, deriv, err := autodiff.Derivative(cube, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(value, deriv)
	// Output: 64 48
}

func ExampleReverse() {
	// f(x) = 3*x0 - 2*x1² + 5
	f := func(x []autodiff.Value) autodiff.Value {
		return autodiff.Add(autodiff.Sub(autodiff.Mul(3, x[0]), autodiff.Mul(2, autodiff.Pow(x[1], 2))), 5)
	}

	res, err := autodiff.Reverse([]autodiff.Func{f}, []float64{4, -3, 5}, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Values, res.Jacobian)
	// Output: [-1] [[3 12 0]]
}

func ExampleForward_seeded() {
	f := func(x []autodiff.Value) autodiff.Value {
		return autodiff.Add(autodiff.Sub(autodiff.Mul(3, x[0]), autodiff.Mul(2, autodiff.Pow(x[1], 2))), 5)
	}
	g := func(x []autodiff.Value) autodiff.Value {
		return autodiff.Add(autodiff.Pow(x[2], 2), autodiff.Log(x[0]))
	}

	res, err := autodiff.Forward([]autodiff.Func{f, g}, []float64{4, -3, 5}, []float64{3, 0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Directional)
	// Output: [9 0.75]
}

func ExampleForwardScalar_domainError() {
	_, err := autodiff.ForwardScalar([]autodiff.ScalarFunc{
		func(x autodiff.Value) autodiff.Value { return autodiff.Log(x) },
	}, 0, nil)

	fmt.Println(errors.Is(err, autodiff.ErrDomain))
	fmt.Println(err)
	// Output:
	// true
	// function 0: log: math domain error: argument 0
}

func ExampleTape() {
	tape := autodiff.NewTape()
	x := tape.Variable(3, 0)
	y := tape.Variable(2, 0)

	z := autodiff.Add(autodiff.Mul(x, y), autodiff.Sin(x))
	grads := tape.Backward(z.(autodiff.Dual).Node())

	fmt.Printf("%.4f %.4f\n", grads.Of(x), grads.Of(y))
	// Output: 1.0100 3.0000
}

func ExampleTry() {
	err := autodiff.Try(func() {
		autodiff.Div(autodiff.NewDual(1, 1), 0)
	})
	fmt.Println(err)
	// Output: div: division by zero
}
