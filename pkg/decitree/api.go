package decitree

// NodeID values uniquely identify a decision node within the lifetime of
// the IDProvider that issued them.
type NodeID string

func (id NodeID) String() string {
	return string(id)
}

// IDProvider issues identifiers for decision nodes. Every call must return a
// value distinct from all previous returns of the same provider.
type IDProvider interface {
	NextNodeID() NodeID
}

// Branch is an ordered sequence of choices, from the root of the decision
// tree down to a node. Branches handed out by a search are never mutated
// afterwards.
type Branch[C any] []C

// Last returns the most recent choice of the branch and false if the
// branch is empty.
func (b Branch[C]) Last() (C, bool) {
	if len(b) == 0 {
		var zero C
		return zero, false
	}
	return b[len(b)-1], true
}

// ExpandFunc returns the choices legally available as the next single step
// after the given branch. It is called with an empty branch for the root.
type ExpandFunc[C any] func(branch Branch[C]) []C

// TerminalFunc reports whether a branch is a complete solution.
type TerminalFunc[C any] func(branch Branch[C]) bool

// EquivalenceFunc reports whether two complete branches should be treated
// as the same solution.
type EquivalenceFunc[C any] func(first, second Branch[C]) bool

// Config bundles the functions describing a decision tree. Expand and
// IsTerminal are required; a nil AreEquivalent disables deduplication.
//
// The functions are expected to be pure functions of their input. Panics
// raised by them are not recovered by the search.
type Config[C any] struct {
	Expand        ExpandFunc[C]
	IsTerminal    TerminalFunc[C]
	AreEquivalent EquivalenceFunc[C]
}
