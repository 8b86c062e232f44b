package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootOf(t *testing.T, v Value) NodeID {
	t.Helper()
	d, ok := v.(Dual)
	require.True(t, ok, "expected Dual, got %T", v)
	return d.Node()
}

func TestTape_Recording(t *testing.T) {
	tape := NewTape()
	assert.True(t, tape.IsRecording(), "new tape should record")

	tape.StopRecording()
	assert.False(t, tape.IsRecording())

	x := tape.Variable(1, 1)
	assert.False(t, x.Tracked())
	y := Add(x, x)
	assert.Equal(t, 2.0, y.Real())
	assert.Equal(t, 2.0, Derivative(y))
	assert.Zero(t, tape.NumNodes())

	tape.StartRecording()
	assert.True(t, tape.IsRecording())
}

func TestTape_VariableIsLeaf(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(7, 0)

	assert.True(t, x.Tracked())
	assert.Same(t, tape, x.Tape())
	assert.Empty(t, tape.Edges(x.Node()))
	assert.Equal(t, 1, tape.NumNodes())
	assert.Zero(t, tape.NumEdges())
}

func TestTape_EdgesPointBackwards(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(0.5, 0)
	y := tape.Variable(2, 0)
	z := Mul(Add(x, y), Sub(y, 1))

	for id := NodeID(0); int(id) < tape.NumNodes(); id++ {
		for _, e := range tape.Edges(id) {
			assert.Less(t, e.Input, id, "edge of node %d must point to an earlier node", id)
		}
	}
	assert.Equal(t, NodeID(tape.NumNodes()-1), rootOf(t, z))
}

func TestTape_EdgesOutOfRange(t *testing.T) {
	tape := NewTape()
	assert.Nil(t, tape.Edges(NoNode))
	assert.Nil(t, tape.Edges(3))
}

func TestBackward_Square(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(3, 0)
	y := Mul(x, x)

	grads := tape.Backward(rootOf(t, y))

	// Both edges point at x: d(x²)/dx = 2x, not x.
	assert.Equal(t, 6.0, grads.Of(x))
}

func TestBackward_SharedSubexpression(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(2, 0)
	y := tape.Variable(5, 0)

	// u = x*y is used twice: f = u + u*x = xy + x²y
	u := Mul(x, y)
	f := Add(u, Mul(u, x))

	grads := tape.Backward(rootOf(t, f))

	assert.Equal(t, 5.0+2*2*5, grads.Of(x)) // y + 2xy
	assert.Equal(t, 2.0+2*2, grads.Of(y))   // x + x²
	assert.Equal(t, 1.0+2, grads.Of(u.(Dual)))
}

func TestBackward_Chain(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(1.5, 0)

	// f = ((x + 1) * 3)^2 / x
	f := Div(Pow(Mul(Add(x, 1), 3), 2), x)

	grads := tape.Backward(rootOf(t, f))

	// f = 9(x+1)²/x, f' = 9(x+1)(x-1)/x²
	want := 9 * (1.5 + 1) * (1.5 - 1) / (1.5 * 1.5)
	assert.InDelta(t, want, grads.Of(x), 1e-12)
}

func TestBackward_UnusedVariable(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(1, 0)
	y := tape.Variable(2, 0)
	z := tape.Variable(3, 0)
	f := Mul(x, 4)

	grads := tape.Backward(rootOf(t, f))

	assert.Equal(t, 4.0, grads.Of(x))
	assert.Zero(t, grads.Of(y))
	assert.Zero(t, grads.Of(z), "unused variables have no gradient")
}

func TestBackward_IsPassScoped(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(3, 0)
	f := Mul(x, x)
	root := rootOf(t, f)

	first := tape.Backward(root)
	second := tape.Backward(root)

	assert.Equal(t, first, second, "repeated sweeps must not accumulate stale state")
	assert.Equal(t, 6.0, second.Of(x))
}

func TestBackward_InvalidRoot(t *testing.T) {
	tape := NewTape()
	assert.Empty(t, tape.Backward(NoNode))
	assert.Empty(t, tape.Backward(10))
	assert.Zero(t, Gradients{}.At(0))
}

func TestBackward_MatchesForward(t *testing.T) {
	for _, x0 := range []float64{-2, -0.5, 0.25, 1, 3} {
		tape := NewTape()
		x := tape.Variable(x0, 1)
		f := Sub(Mul(Pow(x, 3), 2), Div(x, Add(Mul(x, x), 1)))

		grads := tape.Backward(rootOf(t, f))
		assert.InDelta(t, Derivative(f), grads.Of(x), 1e-12, "x=%v", x0)

		analytic := 6*x0*x0 - (1-x0*x0)/math.Pow(x0*x0+1, 2)
		assert.InDelta(t, analytic, grads.Of(x), 1e-12, "x=%v", x0)
	}
}

func TestTape_Clear(t *testing.T) {
	tape := NewTape()
	x := tape.Variable(2, 1)
	Mul(x, x)
	require.Equal(t, 2, tape.NumNodes())

	tape.Clear()

	assert.Zero(t, tape.NumNodes())
	assert.Zero(t, tape.NumEdges())
	assert.True(t, tape.IsRecording(), "Clear preserves recording state")

	err := Try(func() { Mul(x, 2) })
	assert.ErrorIs(t, err, ErrStaleValue)

	fresh := tape.Variable(2, 1)
	assert.Equal(t, NodeID(0), fresh.Node())
}

func TestTape_Mismatch(t *testing.T) {
	a := NewTape().Variable(1, 0)
	b := NewTape().Variable(2, 0)

	err := Try(func() { Add(a, b) })
	assert.ErrorIs(t, err, ErrTapeMismatch)

	// Untaped Duals mix freely with taped ones.
	c := Add(a, New(3, 1))
	assert.Equal(t, 4.0, c.Real())
	assert.Same(t, a.Tape(), c.(Dual).Tape())
}
