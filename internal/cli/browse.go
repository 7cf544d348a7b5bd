package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var failurePercent int
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "browse <item>",
		Short: "Call the (mock) browse service once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("item must be an integer: %q", args[0]))
			}
			bc := app.cfg.Browse
			if cmd.Flags().Changed("failure-percent") {
				bc.FailurePercent = failurePercent
			}
			if cmd.Flags().Changed("delay") {
				bc.Delay = delay
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			contents, err := app.newClient(bc).Browse(ctx, item)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"item":     item,
					"contents": contents,
				},
			})
		},
	}
	cmd.Flags().IntVar(&failurePercent, "failure-percent", 0, "Override browse.failure_percent")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override browse.delay")
	return cmd
}
