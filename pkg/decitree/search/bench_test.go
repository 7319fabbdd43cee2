package search

import (
	"testing"

	"github.com/operator-framework/decitree/pkg/decitree"
)

func BenchmarkSearch(b *testing.B) {
	const (
		width = 4
		depth = 7
	)
	choices := make([]int, width)
	for i := range choices {
		choices[i] = i
	}
	cfg := decitree.Config[int]{
		Expand: func(branch decitree.Branch[int]) []int {
			return choices
		},
		IsTerminal: func(branch decitree.Branch[int]) bool {
			return len(branch) == depth
		},
	}

	for i := 0; i < b.N; i++ {
		s, err := New(cfg)
		if err != nil {
			b.Fatalf("failed to initialize search: %s", err)
		}
		for _, ok := s.Next(); ok; _, ok = s.Next() {
		}
	}
}
