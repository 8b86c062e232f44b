// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/adiff/internal/autodiff/dual"
	"github.com/born-ml/adiff/internal/autodiff/ops"
)

// Operands of the functions below may be a Value or any Go integer or
// floating-point number. Anything else panics with an *OpError wrapping
// ErrTypeMismatch; the drivers and Try report it as an error.

// Add returns a + b.
func Add(a, b any) Value { return dual.Add(a, b) }

// Sub returns a - b.
func Sub(a, b any) Value { return dual.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b any) Value { return dual.Mul(a, b) }

// Div returns a / b. A zero divisor fails with ErrDivisionByZero.
func Div(a, b any) Value { return dual.Div(a, b) }

// Pow returns a raised to the power b.
func Pow(a, b any) Value { return dual.Pow(a, b) }

// Neg returns -a.
func Neg(a any) Value { return dual.Neg(a) }

// Less reports whether a < b, comparing real parts.
func Less(a, b any) bool { return dual.Less(a, b) }

// Greater reports whether a > b, comparing real parts.
func Greater(a, b any) bool { return dual.Greater(a, b) }

// LessEqual reports whether a <= b, comparing real parts.
func LessEqual(a, b any) bool { return dual.LessEqual(a, b) }

// GreaterEqual reports whether a >= b, comparing real parts.
func GreaterEqual(a, b any) bool { return dual.GreaterEqual(a, b) }

// Equal reports whether a == b, comparing real parts.
func Equal(a, b any) bool { return dual.Equal(a, b) }

// DerivativeOf returns the derivative carried by v, zero for a Scalar.
func DerivativeOf(v Value) float64 { return dual.Derivative(v) }

// Sin returns sin(x).
func Sin(x any) Value { return ops.Sin(x) }

// Cos returns cos(x).
func Cos(x any) Value { return ops.Cos(x) }

// Tan returns tan(x).
func Tan(x any) Value { return ops.Tan(x) }

// Asin returns arcsin(x), defined on [-1, 1].
func Asin(x any) Value { return ops.Asin(x) }

// Acos returns arccos(x), defined on [-1, 1].
func Acos(x any) Value { return ops.Acos(x) }

// Atan returns arctan(x).
func Atan(x any) Value { return ops.Atan(x) }

// Sinh returns sinh(x).
func Sinh(x any) Value { return ops.Sinh(x) }

// Cosh returns cosh(x).
func Cosh(x any) Value { return ops.Cosh(x) }

// Tanh returns tanh(x).
func Tanh(x any) Value { return ops.Tanh(x) }

// Asinh returns arsinh(x).
func Asinh(x any) Value { return ops.Asinh(x) }

// Acosh returns arcosh(x), defined for x >= 1.
func Acosh(x any) Value { return ops.Acosh(x) }

// Atanh returns artanh(x), defined on [-1, 1].
func Atanh(x any) Value { return ops.Atanh(x) }

// Exp returns e^x.
func Exp(x any) Value { return ops.Exp(x) }

// Log returns ln(x), defined for x > 0.
func Log(x any) Value { return ops.Log(x) }

// LogBase returns the logarithm of x in the given plain-number base.
func LogBase(x, base any) Value { return ops.LogBase(x, base) }

// Logistic returns 1 / (1 + e^-x).
func Logistic(x any) Value { return ops.Logistic(x) }

// Sqrt returns √x, defined for x >= 0.
func Sqrt(x any) Value { return ops.Sqrt(x) }
