package ad

import "github.com/ucthesis/tapedmc/internal/arena"

// Node is one vertex of the computation graph recorded on a Tape. A leaf
// value (a free input) has no children. Every other node carries, for
// each operand it was computed from, the partial derivative of the node's
// result with respect to that operand ("weight") and the address of the
// operand's own adjoint accumulator ("child adjoint").
type Node struct {
	adjoint       float64
	weights       []float64
	childAdjoints []*float64
	self          arena.Cursor
}

// SetAdjointToOne seeds the node as the root of a reverse sweep.
func (n *Node) SetAdjointToOne() { n.adjoint = 1 }

// Adjoint returns the accumulated sensitivity of the sweep's root with
// respect to this node's value.
func (n *Node) Adjoint() float64 { return n.adjoint }

// propagate pushes this node's adjoint onto each of its children,
// weighted by the recorded partial derivative. A node with no accumulated
// adjoint or no children contributes nothing and is skipped.
func (n *Node) propagate() {
	if n.adjoint == 0 || len(n.childAdjoints) == 0 {
		return
	}
	for i, w := range n.weights {
		*n.childAdjoints[i] += n.adjoint * w
	}
}
