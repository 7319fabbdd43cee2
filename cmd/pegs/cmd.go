package pegs

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/operator-framework/decitree/internal/cli"
	"github.com/operator-framework/decitree/internal/logging"
	"github.com/operator-framework/decitree/internal/pegboard"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

type options struct {
	limit   int
	dedupe  bool
	all     bool
	timeout time.Duration
}

func NewPegsCommand(logOpts *logging.Options) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "pegs",
		Short: "Plays the triangle peg solitaire and prints the best game",
		Long: `Plays every game of the 15 hole triangle peg solitaire, starting with
the bottom right corner empty, and prints the best scoring one as JSON.

Scores: 1 peg left on the starting hole 100, 1 peg elsewhere 50,
2 pegs 25, 3 pegs 10, 8 pegs 200, anything else 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, logOpts, opts)
		},
	}
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after this many finished games (0 plays them all)")
	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, "skip games ending with the same pegs as an earlier game")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every game, best first")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up after this long and print what was found (0 waits forever)")
	return cmd
}

func play(cmd *cobra.Command, logOpts *logging.Options, opts *options) error {
	log := logging.Named(logOpts.Logger(cmd.ErrOrStderr()), "pegs")

	ctx, cancel := cli.Context(cmd, opts.timeout)
	defer cancel()

	solverOpts := []pegboard.Option{
		pegboard.WithLimit(opts.limit),
		pegboard.WithLogger(log),
		pegboard.WithTracer(logOpts.Tracer(log)),
	}
	if opts.dedupe {
		solverOpts = append(solverOpts, pegboard.WithDedupe())
	}

	solutions, err := pegboard.NewSolver(solverOpts...).Solve(ctx)
	if err != nil {
		if !errors.Is(err, search.ErrIncomplete) {
			return err
		}
		log.Info("search stopped early, results are partial", "reason", err.Error(), "games", len(solutions))
	}
	if len(solutions) == 0 {
		return fmt.Errorf("no game found")
	}

	var out interface{} = solutions[0]
	if opts.all {
		out = solutions
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}
