package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/operator-framework/decitree/pkg/decitree"
)

var ErrIncomplete = errors.New("cancelled before the search was exhausted")

// Collect pulls up to limit branches from s, or all of them when limit is
// not positive. The context is checked between pulls; on cancellation the
// branches gathered so far are returned along with an error wrapping
// ErrIncomplete.
func Collect[C any](ctx context.Context, s *Search[C], limit int) ([]decitree.Branch[C], error) {
	var branches []decitree.Branch[C]
	for limit <= 0 || len(branches) < limit {
		if err := ctx.Err(); err != nil {
			return branches, fmt.Errorf("%w: %w", ErrIncomplete, err)
		}
		branch, ok := s.Next()
		if !ok {
			break
		}
		branches = append(branches, branch)
	}
	return branches, nil
}
