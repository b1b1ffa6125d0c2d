package ad

import "github.com/ucthesis/tapedmc/internal/arena"

// propagateInclusive walks the tape in reverse from the node at `from`
// down through (and including) the node at `to`, calling Node.propagate
// on each. Nodes are visited in tape-creation order reversed, which is
// guaranteed to be a valid reverse-topological order: a node is always
// recorded only after every node it depends on. The walk also stops at
// the first cursor that falls before `to`, which is where it ends when
// `to` is a mark taken while the current chunk was exactly full.
func propagateInclusive(from, to arena.Cursor) {
	cur := from
	for {
		if cur.Less(to) {
			return
		}
		tape.nodes.At(cur).propagate()
		if cur == to {
			return
		}
		cur = tape.nodes.Prev(cur)
	}
}

// PropagateToStart seeds x's adjoint to 1 and propagates it all the way
// back to the first node ever recorded on the tape.
func PropagateToStart(x TNum) {
	x.node.SetAdjointToOne()
	propagateInclusive(x.node.self, arena.Cursor{})
}

// PropagateToMark seeds x's adjoint to 1 and propagates it back only as
// far as the tape's current mark, inclusive. Nodes recorded before the
// mark accumulate whatever adjoint flows into them but are not
// themselves propagated further; a later PropagateFromMarkToStart
// finishes the job once every path has contributed. Panics if no mark is
// set.
func PropagateToMark(x TNum) {
	if !HasMark() {
		panic("ad: PropagateToMark called with no mark set")
	}
	x.node.SetAdjointToOne()
	propagateInclusive(x.node.self, tape.nodes.Mark())
}

// PropagateFromMarkToStart propagates the nodes recorded just before the
// mark (which have been accumulating adjoint contributions from every
// path's PropagateToMark) on to the tape's very first node. It does not
// reseed any adjoint to 1 — it continues from whatever has already
// accumulated. Call once, after the last path of a mark/reset loop has
// run and reset the tape back to the mark.
func PropagateFromMarkToStart() {
	if !HasMark() {
		panic("ad: PropagateFromMarkToStart called with no mark set")
	}
	from := tape.nodes.Prev(tape.nodes.Mark())
	propagateInclusive(from, arena.Cursor{})
}
