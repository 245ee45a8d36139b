package zdd

// NodeID identifies a node in a built diagram. The two terminals are
// fixed: Zero is the rejecting terminal, One is the accepting terminal
// (the empty edge set). Real nodes are allocated starting at 2.
type NodeID int

const (
	Zero NodeID = 0
	One  NodeID = 1
)

// DDSpec is the transition function a Builder drives. S is the
// per-build state value — in practice a small value wrapping a
// fixed-size slice of plain-old-data records, one per frontier slot —
// passed and returned by value so the Builder can explore both branches
// of a choice from one parent state without either branch observing the
// other's mutations.
//
// Root and Child must be pure: identical inputs always produce identical
// outputs, with no shared mutable state and no I/O. Key must return a
// value suitable as a map key that uniquely identifies state for a given
// level (states that collide under Key are treated as identical for
// construction and reduction purposes).
type DDSpec[S any] interface {
	// Width is the spec's state width — informational only; the Builder
	// does not itself allocate state, Root does.
	Width() int

	// Root returns the initial state and the top level (|E| in the
	// frontier method's terms).
	Root() (S, int)

	// Child applies branch (0 = skip, 1 = take) to state at level,
	// returning the updated state and a result code: 0 rejects, -1
	// accepts, any other value is the next level to recurse into.
	Child(state S, level, branch int) (S, int)

	// Key returns a canonical, comparable encoding of state for
	// hash-consing. Two states with the same Key at the same level are
	// treated as interchangeable.
	Key(state S) string
}

type node struct {
	level  int
	lo, hi NodeID
}
