package search

import (
	"errors"
	"iter"
	"slices"

	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
)

var (
	ErrMissingExpand     = errors.New("expand function is required")
	ErrMissingIsTerminal = errors.New("terminal test function is required")
)

const noParent = -1

type node[C any] struct {
	id     decitree.NodeID
	choice C
	parent int
}

// Search enumerates the terminal branches of a decision tree, depth first.
//
// Nodes live in an arena and refer to their parent by index. The frontier
// is a stack of arena indices; since children are always appended to the
// arena and pushed in the same order, the frontier is strictly increasing
// and everything in the arena above a popped index is dead.
//
// A Search is single pass and must not be used from multiple goroutines.
type Search[C any] struct {
	cfg    decitree.Config[C]
	tracer decitree.Tracer
	ids    decitree.IDProvider
	log    logr.Logger

	nodes    []node[C]
	frontier []int
	emitted  []decitree.Branch[C]
	yielded  int
	seeded   bool
	done     bool
}

// New returns a search over the tree described by cfg. Nothing is evaluated
// until the first call to Next.
func New[C any](cfg decitree.Config[C], options ...Option) (*Search[C], error) {
	if cfg.Expand == nil {
		return nil, ErrMissingExpand
	}
	if cfg.IsTerminal == nil {
		return nil, ErrMissingIsTerminal
	}

	st := settings{}
	for _, option := range append(options, defaults...) {
		if err := option(&st); err != nil {
			return nil, err
		}
	}

	return &Search[C]{
		cfg:    cfg,
		tracer: st.tracer,
		ids:    st.idProvider,
		log:    *st.logger,
	}, nil
}

// Next evaluates the tree until the next terminal branch is found and
// returns it. It returns false once the tree is exhausted, and on every
// call after that.
//
// A panic raised by one of the configured functions leaves the search
// exhausted.
func (s *Search[C]) Next() (decitree.Branch[C], bool) {
	if s.done {
		return nil, false
	}
	// stays set if a configured function panics
	s.done = true
	branch, ok := s.next()
	s.done = !ok
	return branch, ok
}

// All returns an iterator over the remaining terminal branches. Breaking
// out of the loop leaves the search where it stopped.
func (s *Search[C]) All() iter.Seq[decitree.Branch[C]] {
	return func(yield func(decitree.Branch[C]) bool) {
		for {
			branch, ok := s.Next()
			if !ok || !yield(branch) {
				return
			}
		}
	}
}

// Emitted returns the number of branches yielded so far.
func (s *Search[C]) Emitted() int {
	return s.yielded
}

func (s *Search[C]) next() (decitree.Branch[C], bool) {
	if !s.seeded {
		s.seeded = true
		s.push(noParent, s.cfg.Expand(nil))
	}

	for len(s.frontier) > 0 {
		top := s.frontier[len(s.frontier)-1]
		s.frontier = s.frontier[:len(s.frontier)-1]
		clear(s.nodes[top+1:])
		s.nodes = s.nodes[:top+1]

		branch := s.branch(top)
		s.trace(decitree.Popped, top, len(branch), 0)

		if !s.cfg.IsTerminal(branch) {
			children := s.cfg.Expand(branch)
			s.push(top, children)
			s.trace(decitree.Expanded, top, len(branch), len(children))
			continue
		}

		if s.isDuplicate(branch) {
			s.trace(decitree.Discarded, top, len(branch), 0)
			continue
		}

		if s.cfg.AreEquivalent != nil {
			s.emitted = append(s.emitted, slices.Clone(branch))
		}
		s.yielded++
		s.trace(decitree.Yielded, top, len(branch), 0)
		return branch, true
	}

	s.log.V(1).Info("search exhausted", "yielded", s.yielded)
	return nil, false
}

func (s *Search[C]) push(parent int, choices []C) {
	for _, choice := range choices {
		s.nodes = append(s.nodes, node[C]{
			id:     s.ids.NextNodeID(),
			choice: choice,
			parent: parent,
		})
		s.frontier = append(s.frontier, len(s.nodes)-1)
	}
}

// branch rebuilds the choices from the root down to the node at index h.
func (s *Search[C]) branch(h int) decitree.Branch[C] {
	depth := 0
	for i := h; i != noParent; i = s.nodes[i].parent {
		depth++
	}
	branch := make(decitree.Branch[C], depth)
	for i := h; i != noParent; i = s.nodes[i].parent {
		depth--
		branch[depth] = s.nodes[i].choice
	}
	return branch
}

func (s *Search[C]) isDuplicate(branch decitree.Branch[C]) bool {
	if s.cfg.AreEquivalent == nil {
		return false
	}
	for _, emitted := range s.emitted {
		if s.cfg.AreEquivalent(emitted, branch) {
			return true
		}
	}
	return false
}

func (s *Search[C]) trace(event decitree.Event, h int, depth int, children int) {
	s.tracer.Trace(position{
		event:    event,
		id:       s.nodes[h].id,
		depth:    depth,
		frontier: len(s.frontier),
		children: children,
		emitted:  s.yielded,
	})
}
