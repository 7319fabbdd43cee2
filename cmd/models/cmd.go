package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/operator-framework/decitree/internal/cli"
	"github.com/operator-framework/decitree/internal/cnf"
	"github.com/operator-framework/decitree/internal/logging"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

type options struct {
	limit   int
	timeout time.Duration
}

func NewModelsCommand(logOpts *logging.Options) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "models <path>",
		Short: "Lists the models of a sat problem given in dimacs format",
		Long: `Lists the models of a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variable> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
-1 -2 0
c cnf: (1 or 2) and (not 1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return enumerate(cmd, logOpts, opts, args[0])
		},
	}
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "stop after this many models (0 lists them all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up after this long and print what was found (0 waits forever)")
	return cmd
}

func enumerate(cmd *cobra.Command, logOpts *logging.Options, opts *options, path string) error {
	log := logging.Named(logOpts.Logger(cmd.ErrOrStderr()), "models")

	// open dimacs file
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	dimacs, err := cnf.Parse(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	ctx, cancel := cli.Context(cmd, opts.timeout)
	defer cancel()

	enumerator := cnf.NewEnumerator(dimacs, cnf.WithLogger(log), cnf.WithTracer(logOpts.Tracer(log)))
	models, err := enumerator.Models(ctx, opts.limit)
	if err != nil {
		if !errors.Is(err, search.ErrIncomplete) {
			return err
		}
		log.Info("search stopped early, results are partial", "reason", err.Error(), "models", len(models))
	}

	out := cmd.OutOrStdout()
	if len(models) == 0 {
		fmt.Fprintln(out, "s UNSATISFIABLE")
		return nil
	}
	fmt.Fprintln(out, "s SATISFIABLE")
	for _, m := range models {
		fmt.Fprintln(out, m)
	}
	return nil
}
