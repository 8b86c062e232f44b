package dual

// NodeID identifies a node in a Tape arena.
type NodeID int32

// NoNode is the id of a Dual that was not recorded on a tape.
const NoNode NodeID = -1

// Edge links a node to one of the values it was computed from.
// Grad is the local partial derivative of the node with respect to Input,
// evaluated when the node was created.
type Edge struct {
	Input NodeID
	Grad  float64
}

// node is a window into Tape.edges.
type node struct {
	first int32
	count int32
}

// Tape records the dependency graph built while evaluating a function on
// Duals, and computes gradients with a single backward sweep.
//
// Nodes live in an arena and are addressed by NodeID. Ids are handed out in
// evaluation order, so every edge points to a smaller id and the graph is a
// DAG by construction. A tape is meant for one evaluation pass: Clear discards
// the whole arena at once, and Duals from before the Clear can no longer be
// used in new operations.
//
// A Tape is not safe for concurrent use.
//
// Usage:
//
//	tape := NewTape()
//	x := tape.Variable(2, 0)
//	y := Add(Mul(x, x), x)
//	grads := tape.Backward(y.(Dual).Node())
//	grads.Of(x) // 2x + 1 = 5
type Tape struct {
	nodes     []node
	edges     []Edge
	recording bool
	gen       uint32
}

// NewTape creates an empty tape that is recording.
func NewTape() *Tape {
	return &Tape{
		nodes:     make([]node, 0, 64),
		edges:     make([]Edge, 0, 128),
		recording: true,
	}
}

// StartRecording enables recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables recording. Operations on Duals from this tape still
// compute real parts and derivatives but add no nodes.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// Variable creates an independent input: a leaf node with no edges.
// deriv seeds the forward-mode derivative; reverse mode ignores it.
//
// If the tape is not recording, the returned Dual is not tracked.
func (t *Tape) Variable(real, deriv float64) Dual {
	d := Dual{real: real, deriv: deriv, tape: t, id: NoNode, gen: t.gen}
	if t.recording {
		d.id = t.push(nil)
	}
	return d
}

// Clear discards every recorded node. Recording state is preserved.
func (t *Tape) Clear() {
	t.nodes = t.nodes[:0]
	t.edges = t.edges[:0]
	t.gen++
}

// NumNodes returns the number of recorded nodes.
func (t *Tape) NumNodes() int {
	return len(t.nodes)
}

// NumEdges returns the number of recorded edges.
func (t *Tape) NumEdges() int {
	return len(t.edges)
}

// Edges returns the edges of node id in operand order.
// The returned slice must not be modified.
func (t *Tape) Edges(id NodeID) []Edge {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	n := t.nodes[id]
	return t.edges[n.first : n.first+n.count : n.first+n.count]
}

// push appends a node with the given edges and returns its id.
func (t *Tape) push(edges []Edge) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{first: int32(len(t.edges)), count: int32(len(edges))})
	t.edges = append(t.edges, edges...)
	return id
}

// Gradients holds the result of one backward sweep, indexed by NodeID.
// It belongs to the sweep that produced it; nothing is stored on the tape.
type Gradients []float64

// At returns the gradient accumulated at node id, 0 if id is out of range.
func (g Gradients) At(id NodeID) float64 {
	if id < 0 || int(id) >= len(g) {
		return 0
	}
	return g[id]
}

// Of returns the gradient accumulated at d's node.
func (g Gradients) Of(d Dual) float64 {
	return g.At(d.id)
}

// Backward computes the gradient of root with respect to every node it
// depends on.
//
// Algorithm:
//  1. Seed the root with 1
//  2. Walk node ids from root down to 0 (reverse evaluation order)
//  3. For each edge (input, grad) of a node, add grad * gradient(node) to input
//
// Because every edge points to a smaller id, a node's gradient is complete
// before it is propagated. The result equals the sum, over every path from
// root to a node, of the product of the edge weights along that path, so a
// value used several times receives the sum of its contributions.
func (t *Tape) Backward(root NodeID) Gradients {
	if root < 0 || int(root) >= len(t.nodes) {
		return Gradients{}
	}

	grads := make(Gradients, root+1)
	grads[root] = 1

	for id := root; id >= 0; id-- {
		g := grads[id]
		if g == 0 {
			continue
		}
		for _, e := range t.Edges(id) {
			grads[e.Input] += e.Grad * g
		}
	}

	return grads
}
