package pegboard_test

import (
	"context"
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/decitree/internal/pegboard"
)

func TestPegboard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pegboard Suite")
}

func pos(bottom, left, right int) pegboard.Position {
	return pegboard.Position{Bottom: bottom, Left: left, Right: right}
}

var _ = Describe("Board", func() {
	It("should have fifteen holes", func() {
		positions := pegboard.Positions()
		Expect(positions).To(HaveLen(15))
		Expect(positions[0]).To(Equal(pos(4, 0, 0)))
		Expect(positions[14]).To(Equal(pos(0, 4, 0)))
		for _, p := range positions {
			Expect(p.OnBoard()).To(BeTrue())
		}
	})

	It("should start with the bottom right corner empty", func() {
		board := pegboard.StartingBoard()
		Expect(board.Pegs).To(HaveLen(14))
		Expect(board.Has(pos(0, 4, 0))).To(BeFalse())
		empty, ok := board.Empty()
		Expect(ok).To(BeTrue())
		Expect(empty).To(Equal(pos(0, 4, 0)))
	})

	It("should step off the board at the edges", func() {
		_, ok := pegboard.UpperLeft(pos(4, 0, 0))
		Expect(ok).To(BeFalse())
		next, ok := pegboard.BottomRight(pos(4, 0, 0))
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(pos(3, 1, 0)))
	})

	It("should only offer jumps into the empty corner from the start", func() {
		Expect(pegboard.StartingBoard().Moves()).To(Equal([]pegboard.Move{
			{Start: pos(2, 2, 0), End: pos(0, 4, 0)},
			{Start: pos(0, 2, 2), End: pos(0, 4, 0)},
		}))
	})

	It("should remove the jumped peg", func() {
		board := pegboard.StartingBoard().Apply(pegboard.Move{Start: pos(0, 2, 2), End: pos(0, 4, 0)})
		Expect(board.Pegs).To(HaveLen(13))
		Expect(board.Has(pos(0, 3, 1))).To(BeFalse())
		Expect(board.Has(pos(0, 2, 2))).To(BeFalse())
		Expect(board.Pegs[len(board.Pegs)-1]).To(Equal(pos(0, 4, 0)))
	})

	It("should not modify the board it applies moves to", func() {
		board := pegboard.StartingBoard()
		board.Apply(pegboard.Move{Start: pos(0, 2, 2), End: pos(0, 4, 0)})
		Expect(board.Pegs).To(HaveLen(14))
	})

	It("should panic on a jump without a hole in between", func() {
		Expect(func() { pegboard.Between(pos(4, 0, 0), pos(3, 0, 1)) }).To(Panic())
	})

	It("should compare holes regardless of peg order", func() {
		a := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0), pos(0, 0, 4)}}
		b := pegboard.Board{Pegs: []pegboard.Position{pos(0, 0, 4), pos(4, 0, 0)}}
		Expect(a.SameHoles(b)).To(BeTrue())
		Expect(a.SameHoles(pegboard.Board{Pegs: a.Pegs[:1]})).To(BeFalse())
	})

	It("should encode positions as fractions", func() {
		data, err := json.Marshal(pegboard.Move{Start: pos(2, 1, 1), End: pos(0, 4, 0)})
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(MatchJSON(`{
			"start": {"bottom": 0.5, "left": 0.25, "right": 0.25},
			"end": {"bottom": 0, "left": 1, "right": 0}
		}`))
	})
})

var _ = Describe("Score", func() {
	It("should rate a single peg on the starting hole highest", func() {
		start := pegboard.Board{Pegs: []pegboard.Position{pos(2, 0, 2), pos(3, 0, 1)}}
		// first empty hole of this board is the top
		Expect(pegboard.Score(start, []pegboard.Move{{Start: pos(2, 0, 2), End: pos(4, 0, 0)}})).To(Equal(100))
	})

	It("should rate a single peg elsewhere", func() {
		start := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0), pos(3, 0, 1)}}
		Expect(pegboard.Score(start, []pegboard.Move{{Start: pos(4, 0, 0), End: pos(2, 0, 2)}})).To(Equal(50))
	})

	It("should rate by pegs left", func() {
		two := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0), pos(0, 0, 4)}}
		Expect(pegboard.Score(two, nil)).To(Equal(25))
		three := pegboard.Board{Pegs: append(two.Pegs, pos(0, 4, 0))}
		Expect(pegboard.Score(three, nil)).To(Equal(10))
		Expect(pegboard.Score(pegboard.StartingBoard(), nil)).To(Equal(0))
	})

	It("should rate leaving eight pegs", func() {
		Expect(pegboard.Score(pegboard.Board{Pegs: pegboard.Positions()[:8]}, nil)).To(Equal(200))
	})
})

var _ = Describe("Solver", func() {
	It("should play the only game of a two peg board", func() {
		board := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0), pos(3, 0, 1)}}
		solutions, err := pegboard.NewSolver(pegboard.WithBoard(board)).Solve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(Equal([]pegboard.Solution{{
			Moves: []pegboard.Move{{Start: pos(4, 0, 0), End: pos(2, 0, 2)}},
			Score: 50,
		}}))
	})

	It("should only return finished games", func() {
		start := pegboard.StartingBoard()
		solutions, err := pegboard.NewSolver(pegboard.WithLimit(25)).Solve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(solutions).To(HaveLen(25))
		for _, s := range solutions {
			end := start.Apply(s.Moves...)
			Expect(end.Moves()).To(BeEmpty())
			Expect(end.Pegs).To(HaveLen(14 - len(s.Moves)))
			Expect(s.Score).To(Equal(pegboard.Score(start, s.Moves)))
		}
	})

	It("should sort games best first", func() {
		solutions, err := pegboard.NewSolver(pegboard.WithLimit(200)).Solve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		for i := 1; i < len(solutions); i++ {
			Expect(solutions[i-1].Score).To(BeNumerically(">=", solutions[i].Score))
		}
	})

	It("should not return two games ending on the same holes when deduplicating", func() {
		start := pegboard.StartingBoard()
		solutions, err := pegboard.NewSolver(pegboard.WithLimit(10), pegboard.WithDedupe()).Solve(context.Background())
		Expect(err).ToNot(HaveOccurred())
		for i := range solutions {
			for j := i + 1; j < len(solutions); j++ {
				a := start.Apply(solutions[i].Moves...)
				b := start.Apply(solutions[j].Moves...)
				Expect(a.SameHoles(b)).To(BeFalse())
			}
		}
	})

	It("should return the best game", func() {
		board := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0), pos(3, 0, 1)}}
		best, ok, err := pegboard.NewSolver(pegboard.WithBoard(board)).Best(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(best.Score).To(Equal(50))
	})

	It("should report no game on a board without moves", func() {
		board := pegboard.Board{Pegs: []pegboard.Position{pos(4, 0, 0)}}
		_, ok, err := pegboard.NewSolver(pegboard.WithBoard(board)).Best(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})
