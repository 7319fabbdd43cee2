package pegboard

import (
	"encoding/json"
	"fmt"
)

// Side is the number of holes along one edge of the triangle.
const Side = 5

const span = Side - 1

// Position addresses a hole of the triangular board by its distance to the
// bottom, left and right edges, in steps. The three distances always add
// up to span.
type Position struct {
	Bottom int
	Left   int
	Right  int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Bottom, p.Left, p.Right)
}

// MarshalJSON encodes distances as fractions of the board height.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bottom float64 `json:"bottom"`
		Left   float64 `json:"left"`
		Right  float64 `json:"right"`
	}{
		Bottom: float64(p.Bottom) / span,
		Left:   float64(p.Left) / span,
		Right:  float64(p.Right) / span,
	})
}

func (p Position) OnBoard() bool {
	in := func(d int) bool { return d >= 0 && d <= span }
	return in(p.Bottom) && in(p.Left) && in(p.Right) && p.Bottom+p.Left+p.Right == span
}

// Positions lists every hole, top row first and left to right within a row.
func Positions() []Position {
	positions := make([]Position, 0, Side*(Side+1)/2)
	for bottom := span; bottom >= 0; bottom-- {
		for left := 0; left <= span-bottom; left++ {
			positions = append(positions, Position{Bottom: bottom, Left: left, Right: span - bottom - left})
		}
	}
	return positions
}

// Direction steps one hole away, or returns false when that leaves the board.
type Direction func(p Position) (Position, bool)

func step(db, dl, dr int) Direction {
	return func(p Position) (Position, bool) {
		next := Position{Bottom: p.Bottom + db, Left: p.Left + dl, Right: p.Right + dr}
		return next, next.OnBoard()
	}
}

var (
	Left        = step(0, -1, 1)
	Right       = step(0, 1, -1)
	UpperLeft   = step(1, -1, 0)
	UpperRight  = step(1, 0, -1)
	BottomLeft  = step(-1, 0, 1)
	BottomRight = step(-1, 1, 0)
)

var directions = []Direction{Left, Right, UpperLeft, UpperRight, BottomLeft, BottomRight}

// Between returns the hole jumped over when moving from a to b. It panics
// if there is no such hole, which means the move was not built by Moves.
func Between(a, b Position) Position {
	sb, sl, sr := a.Bottom+b.Bottom, a.Left+b.Left, a.Right+b.Right
	mid := Position{Bottom: sb / 2, Left: sl / 2, Right: sr / 2}
	if sb%2 != 0 || sl%2 != 0 || sr%2 != 0 || !mid.OnBoard() {
		panic(fmt.Sprintf("no hole between %s and %s", a, b))
	}
	return mid
}

type Move struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.Start, m.End)
}

// Board holds the positions of the pegs, in the order they were placed.
type Board struct {
	Pegs []Position
}

// NewBoard returns a full board with a single empty hole.
func NewBoard(empty Position) Board {
	board := Board{}
	for _, p := range Positions() {
		if p != empty {
			board.Pegs = append(board.Pegs, p)
		}
	}
	return board
}

// StartingBoard is the classic opening: every hole filled except the
// bottom right corner.
func StartingBoard() Board {
	return NewBoard(Position{Bottom: 0, Left: span, Right: 0})
}

func (b Board) Has(p Position) bool {
	for _, peg := range b.Pegs {
		if peg == p {
			return true
		}
	}
	return false
}

// Apply replays moves on a copy of the board.
func (b Board) Apply(moves ...Move) Board {
	pegs := append([]Position(nil), b.Pegs...)
	for _, m := range moves {
		mid := Between(m.Start, m.End)
		kept := pegs[:0]
		for _, peg := range pegs {
			if peg != mid && peg != m.Start {
				kept = append(kept, peg)
			}
		}
		pegs = append(kept, m.End)
	}
	return Board{Pegs: pegs}
}

// Moves returns the legal jumps, peg by peg and direction by direction.
func (b Board) Moves() []Move {
	var moves []Move
	for _, peg := range b.Pegs {
		for _, direction := range directions {
			mid, ok := direction(peg)
			if !ok || !b.Has(mid) {
				continue
			}
			end, ok := direction(mid)
			if !ok || b.Has(end) {
				continue
			}
			moves = append(moves, Move{Start: peg, End: end})
		}
	}
	return moves
}

// Empty returns the first hole without a peg, in Positions order.
func (b Board) Empty() (Position, bool) {
	for _, p := range Positions() {
		if !b.Has(p) {
			return p, true
		}
	}
	return Position{}, false
}

// SameHoles reports whether both boards have pegs in exactly the same holes.
func (b Board) SameHoles(other Board) bool {
	if len(b.Pegs) != len(other.Pegs) {
		return false
	}
	for _, p := range b.Pegs {
		if !other.Has(p) {
			return false
		}
	}
	return true
}
