package sudoku

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

const size = 9

// Grid holds the digits of a board, row by row. Zero marks an empty cell.
type Grid [size * size]int

func Cell(row int, col int) int {
	return row*size + col
}

// Parse reads a board from 81 characters, digits for given cells and '.'
// or '0' for empty ones. Whitespace is ignored.
func Parse(s string) (Grid, error) {
	var g Grid
	s = strings.Join(strings.Fields(s), "")
	if len(s) != len(g) {
		return g, fmt.Errorf("expected %d cells, got %d", len(g), len(s))
	}
	for i, r := range s {
		switch {
		case r == '.' || r == '0':
		case r >= '1' && r <= '9':
			g[i] = int(r - '0')
		default:
			return g, fmt.Errorf("invalid character %q at cell %d", r, i)
		}
	}
	if err := g.Validate(); err != nil {
		return g, err
	}
	return g, nil
}

// Validate checks that no digit is repeated in a row, column or box.
func (g Grid) Validate() error {
	for i, n := range g {
		if n == 0 {
			continue
		}
		if !g.allows(i, n) {
			return fmt.Errorf("digit %d at row %d col %d conflicts with another cell", n, i/size+1, i%size+1)
		}
	}
	return nil
}

// allows reports whether n can go in cell i without repeating a digit,
// ignoring whatever is in cell i itself.
func (g Grid) allows(i int, n int) bool {
	row, col := i/size, i%size
	for k := 0; k < size; k++ {
		if c := Cell(row, k); c != i && g[c] == n {
			return false
		}
		if c := Cell(k, col); c != i && g[c] == n {
			return false
		}
	}
	// all offsets w.r.t. the box root
	x, y := row-row%3, col-col%3
	for dx := 0; dx < 3; dx++ {
		for dy := 0; dy < 3; dy++ {
			if c := Cell(x+dx, y+dy); c != i && g[c] == n {
				return false
			}
		}
	}
	return true
}

func (g Grid) firstEmpty() (int, bool) {
	for i, n := range g {
		if n == 0 {
			return i, true
		}
	}
	return 0, false
}

func (g Grid) String() string {
	var b strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if n := g[Cell(row, col)]; n == 0 {
				b.WriteString(".")
			} else {
				fmt.Fprintf(&b, "%d", n)
			}
			if col != size-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Placement writes a digit in a cell.
type Placement struct {
	Cell  int
	Digit int
}

func (g Grid) apply(placements []Placement) Grid {
	for _, p := range placements {
		g[p.Cell] = p.Digit
	}
	return g
}

var ErrNoSolution = errors.New("no solution found")

type Sudoku struct {
	puzzle Grid
	log    logr.Logger
	tracer decitree.Tracer
}

type Option func(s *Sudoku)

func WithLogger(l logr.Logger) Option {
	return func(s *Sudoku) {
		s.log = l
	}
}

func WithTracer(t decitree.Tracer) Option {
	return func(s *Sudoku) {
		s.tracer = t
	}
}

func NewSudoku(puzzle Grid, options ...Option) *Sudoku {
	s := &Sudoku{
		puzzle: puzzle,
		log:    logr.Discard(),
		tracer: search.DefaultTracer{},
	}
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

// Config fills the first empty cell at every step. Digits are offered
// largest first so the smallest digit is tried first.
func (s *Sudoku) Config() decitree.Config[Placement] {
	return decitree.Config[Placement]{
		Expand: func(branch decitree.Branch[Placement]) []Placement {
			g := s.puzzle.apply(branch)
			cell, ok := g.firstEmpty()
			if !ok {
				return nil
			}
			var next []Placement
			for n := size; n >= 1; n-- {
				if g.allows(cell, n) {
					next = append(next, Placement{Cell: cell, Digit: n})
				}
			}
			return next
		},
		IsTerminal: func(branch decitree.Branch[Placement]) bool {
			_, empty := s.puzzle.apply(branch).firstEmpty()
			return !empty
		},
	}
}

// Solutions returns up to limit filled grids, or all of them when limit is
// not positive.
func (s *Sudoku) Solutions(ctx context.Context, limit int) ([]Grid, error) {
	// a full board has nothing left to decide
	if _, ok := s.puzzle.firstEmpty(); !ok {
		return []Grid{s.puzzle}, nil
	}

	fill, err := search.New(s.Config(), search.WithTracer(s.tracer), search.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	branches, err := search.Collect(ctx, fill, limit)
	grids := make([]Grid, 0, len(branches))
	for _, branch := range branches {
		grids = append(grids, s.puzzle.apply(branch))
	}
	s.log.V(1).Info("grids filled", "count", len(grids))
	return grids, err
}

// Solve returns the first solution found.
func (s *Sudoku) Solve(ctx context.Context) (Grid, error) {
	grids, err := s.Solutions(ctx, 1)
	if err != nil {
		return Grid{}, err
	}
	if len(grids) == 0 {
		return Grid{}, ErrNoSolution
	}
	return grids[0], nil
}
