package ad

import "github.com/ucthesis/tapedmc/internal/arena"

// nodeChunkSize and edgeChunkSize size the tape's backing arenas. Edge
// arenas hold two slots per chunk for every node slot, since a node here
// never has more than two children.
const (
	nodeChunkSize = 40000
	edgeChunkSize = 80000
)

// Tape is the single recording surface for every TNum operation. It owns
// three chunked arenas: one for nodes themselves, one for the per-edge
// weights, and one for the per-edge child-adjoint back-pointers. The three
// are always advanced, marked, and reset together, so a Node's weights and
// childAdjoints slices remain valid for as long as the Node itself does.
type Tape struct {
	nodes         *arena.ChunkedArena[Node]
	weights       *arena.ChunkedArena[float64]
	childAdjoints *arena.ChunkedArena[*float64]
}

func newTape() *Tape {
	return &Tape{
		nodes:         arena.New[Node](nodeChunkSize),
		weights:       arena.New[float64](edgeChunkSize),
		childAdjoints: arena.New[*float64](edgeChunkSize),
	}
}

// tape is the single process-wide recording surface. A global is
// sufficient because the tape is explicitly single-threaded: see
// DESIGN.md for why the multi-threaded, goroutine-keyed tape store is not
// carried forward here.
var tape = newTape()

// record allocates a Node with room for nChildren edges. nChildren must be
// 0, 1, or 2: every TNum operation is unary, binary, or a bare leaf.
func (t *Tape) record(nChildren int) *Node {
	n := t.nodes.Emplace(Node{self: t.nodes.Here()})
	if nChildren > 0 {
		n.weights = t.weights.Reserve(nChildren)
		n.childAdjoints = t.childAdjoints.Reserve(nChildren)
	}
	return n
}

// SetMark records the tape's current write position as the checkpoint a
// later ResetToMark rewinds to. Call once, after recording the free
// (leaf) inputs of a computation and before entering a loop whose
// per-iteration nodes should not accumulate indefinitely.
func SetMark() {
	tape.nodes.SetMark()
	tape.weights.SetMark()
	tape.childAdjoints.SetMark()
}

// HasMark reports whether SetMark has been called since the last Clear.
func HasMark() bool { return tape.nodes.HasMark() }

// ResetToMark discards every node recorded since the last SetMark. Panics
// if no mark has been set.
func ResetToMark() {
	tape.nodes.ResetToMark()
	tape.weights.ResetToMark()
	tape.childAdjoints.ResetToMark()
}

// Clear empties the tape entirely and drops any mark. Intended for tests
// and for resetting between independent pricing runs sharing a process.
func Clear() {
	tape.nodes = arena.New[Node](nodeChunkSize)
	tape.weights = arena.New[float64](edgeChunkSize)
	tape.childAdjoints = arena.New[*float64](edgeChunkSize)
}

// Len reports how many nodes are currently live on the tape.
func Len() int { return tape.nodes.Len() }
