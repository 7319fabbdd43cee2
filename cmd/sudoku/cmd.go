package sudoku

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/operator-framework/decitree/internal/cli"
	"github.com/operator-framework/decitree/internal/logging"
	"github.com/operator-framework/decitree/internal/sudoku"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

// Puzzle is solved when no board is given.
const Puzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

type options struct {
	limit   int
	timeout time.Duration
}

func NewSudokuCommand(logOpts *logging.Options) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sudoku [board]",
		Short: "Returns solved sudoku boards",
		Long: `Returns solved sudoku boards. The board is given as 81 characters, row
by row, with digits for given cells and '.' or '0' for empty ones.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := Puzzle
			if len(args) == 1 {
				board = args[0]
			}
			return solve(cmd, logOpts, opts, board)
		},
	}
	cmd.Flags().IntVar(&opts.limit, "limit", 1, "stop after this many solutions (0 lists them all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up after this long and print what was found (0 waits forever)")
	return cmd
}

func solve(cmd *cobra.Command, logOpts *logging.Options, opts *options, board string) error {
	log := logging.Named(logOpts.Logger(cmd.ErrOrStderr()), "sudoku")

	puzzle, err := sudoku.Parse(board)
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	ctx, cancel := cli.Context(cmd, opts.timeout)
	defer cancel()

	grids, err := sudoku.NewSudoku(puzzle, sudoku.WithLogger(log), sudoku.WithTracer(logOpts.Tracer(log))).Solutions(ctx, opts.limit)
	if err != nil {
		if !errors.Is(err, search.ErrIncomplete) {
			return err
		}
		log.Info("search stopped early, results are partial", "reason", err.Error(), "solutions", len(grids))
	}

	out := cmd.OutOrStdout()
	if len(grids) == 0 {
		fmt.Fprintln(out, "no solution found")
		return nil
	}
	for i, g := range grids {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, g)
	}
	return nil
}
