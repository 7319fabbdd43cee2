package pegboard

import (
	"context"
	"sort"

	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

// Score rates the board left after playing moves from start.
func Score(start Board, moves []Move) int {
	end := start.Apply(moves...)
	switch len(end.Pegs) {
	case 1:
		if empty, ok := start.Empty(); ok && empty == end.Pegs[0] {
			return 100
		}
		return 50
	case 2:
		return 25
	case 3:
		return 10
	case 8:
		return 200
	}
	return 0
}

type Solution struct {
	Moves []Move `json:"decisions"`
	Score int    `json:"score"`
}

type Solver struct {
	start  Board
	dedupe bool
	limit  int
	tracer decitree.Tracer
	log    logr.Logger
}

type Option func(s *Solver)

func WithBoard(b Board) Option {
	return func(s *Solver) {
		s.start = b
	}
}

// WithDedupe drops games ending on the same holes as a game already found.
func WithDedupe() Option {
	return func(s *Solver) {
		s.dedupe = true
	}
}

// WithLimit stops after n finished games. Zero plays every game.
func WithLimit(n int) Option {
	return func(s *Solver) {
		s.limit = n
	}
}

func WithTracer(t decitree.Tracer) Option {
	return func(s *Solver) {
		s.tracer = t
	}
}

func WithLogger(l logr.Logger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{
		start:  StartingBoard(),
		tracer: search.DefaultTracer{},
		log:    logr.Discard(),
	}
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

// Config describes every game playable from the solver's starting board.
// A game is finished when no jump is left.
func (s *Solver) Config() decitree.Config[Move] {
	cfg := decitree.Config[Move]{
		Expand: func(branch decitree.Branch[Move]) []Move {
			return s.start.Apply(branch...).Moves()
		},
		IsTerminal: func(branch decitree.Branch[Move]) bool {
			return len(s.start.Apply(branch...).Moves()) == 0
		},
	}
	if s.dedupe {
		cfg.AreEquivalent = func(first, second decitree.Branch[Move]) bool {
			return s.start.Apply(first...).SameHoles(s.start.Apply(second...))
		}
	}
	return cfg
}

// Solve plays the games, scores them and returns them best first. Games
// with the same score keep the order they were found in.
func (s *Solver) Solve(ctx context.Context) ([]Solution, error) {
	games, err := search.New(s.Config(), search.WithTracer(s.tracer), search.WithLogger(s.log))
	if err != nil {
		return nil, err
	}

	branches, err := search.Collect(ctx, games, s.limit)
	solutions := make([]Solution, 0, len(branches))
	for _, branch := range branches {
		solutions = append(solutions, Solution{Moves: branch, Score: Score(s.start, branch)})
	}
	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].Score > solutions[j].Score
	})
	s.log.V(1).Info("games scored", "count", len(solutions))
	return solutions, err
}

// Best returns the highest scoring game, or false if none was played.
func (s *Solver) Best(ctx context.Context) (Solution, bool, error) {
	solutions, err := s.Solve(ctx)
	if len(solutions) == 0 {
		return Solution{}, false, err
	}
	return solutions[0], true, err
}
