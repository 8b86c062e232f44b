package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/adiff/internal/autodiff/dual"
)

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(x any) dual.Value
		x    float64
	}{
		{"log zero", Log, 0},
		{"log negative", Log, -1},
		{"sqrt negative", Sqrt, -4},
		{"asin above one", Asin, 1.5},
		{"acos below minus one", Acos, -2},
		{"acosh below one", Acosh, 0.5},
		{"atanh above one", Atanh, 1.01},
		{"logbase zero", func(x any) dual.Value { return LogBase(x, 2) }, 0},
		{"logbase negative", func(x any) dual.Value { return LogBase(x, 10) }, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/scalar", func(t *testing.T) {
			assert.ErrorIs(t, dual.Try(func() { tt.fn(tt.x) }), dual.ErrDomain)
		})
		t.Run(tt.name+"/dual", func(t *testing.T) {
			tape := dual.NewTape()
			x := tape.Variable(tt.x, 1)
			assert.ErrorIs(t, dual.Try(func() { tt.fn(x) }), dual.ErrDomain)
			assert.Equal(t, 1, tape.NumNodes(), "failed op must not record")
		})
	}
}

func TestLogBase_InvalidBase(t *testing.T) {
	for _, base := range []float64{0, -2, 1} {
		err := dual.Try(func() { LogBase(2, base) })
		assert.ErrorIs(t, err, dual.ErrDomain, "base=%v", base)
	}
}

func TestTypeErrors(t *testing.T) {
	tests := map[string]func(){
		"sin string":        func() { Sin("string") },
		"exp slice":         func() { Exp([]float64{1}) },
		"logistic string":   func() { Logistic("string!") },
		"logbase string":    func() { LogBase("StRiNg!", 4) },
		"logbase base type": func() { LogBase(4, "StRiNg!") },
		"logbase dual base": func() { LogBase(4, dual.New(2, 1)) },
		"sqrt nil":          func() { Sqrt(nil) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, dual.Try(fn), dual.ErrTypeMismatch)
		})
	}
}
