package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target [N]",
		Short: "Show or set the weekly session target (1-7)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				fmt.Printf("Weekly target: %d sessions\n", app.Settings.Target(ctx))
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid target %q (expected a number)", args[0])
			}
			if !app.Settings.SetTarget(ctx, n) {
				return fmt.Errorf("could not save target")
			}
			fmt.Printf("Weekly target set to %d sessions\n", app.Settings.Target(ctx))
			return nil
		},
	}
	return cmd
}
