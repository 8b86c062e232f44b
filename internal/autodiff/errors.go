package autodiff

import "errors"

// Common errors.
var (
	ErrShapeMismatch = errors.New("value and seed are not of the same shape")
	ErrNoFunctions   = errors.New("no functions to differentiate")
	ErrNilFunction   = errors.New("nil function")
	ErrNilResult     = errors.New("function returned a nil value")
	ErrUnknownMode   = errors.New("unknown differentiation mode")
)
