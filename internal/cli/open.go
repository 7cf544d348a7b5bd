package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <link>",
		Short: "Start the TUI at a deep link",
		Long: strings.TrimSpace(`
Start the TUI with the deep link applied. A bare link as the first argument
(navdemo music/browser/0) is rewritten to this command. --deeplink may repeat
the same link but cannot name a different one.

Known limitation: the state holds any depth, but the first frame shows the
innermost level only; use esc to walk back up the chain.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Deeplink != "" && app.Deeplink != args[0] {
				return fmt.Errorf("open: --deeplink %q conflicts with link argument %q", app.Deeplink, args[0])
			}
			return runTUI(cmd, app, args[0])
		},
	}
}
