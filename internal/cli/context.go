package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

// Context returns the command context, bounded by timeout when it is
// positive.
func Context(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
