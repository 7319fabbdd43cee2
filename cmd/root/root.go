package root

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/decitree/cmd/models"
	"github.com/operator-framework/decitree/cmd/pegs"
	"github.com/operator-framework/decitree/cmd/sudoku"
	"github.com/operator-framework/decitree/internal/logging"
)

func NewRootCmd() *cobra.Command {
	opts := &logging.Options{}
	rootCmd := &cobra.Command{
		Use:   "decitree",
		Short: "Decitree enumerates the solutions of decision trees",
		Long: `Decitree walks a decision tree depth first and lists every complete
branch it reaches. It ships with a few puzzles expressed as decision trees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.AddFlags(rootCmd.PersistentFlags())

	// add sub-commands
	rootCmd.AddCommand(pegs.NewPegsCommand(opts))
	rootCmd.AddCommand(models.NewModelsCommand(opts))
	rootCmd.AddCommand(sudoku.NewSudokuCommand(opts))

	return rootCmd
}
