package cli

import (
	"navdemo/internal/deeplink"
	"navdemo/internal/nav"

	"github.com/spf13/cobra"
)

func newLinksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List example deep links and the state each one produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]map[string]any, 0, len(deeplink.Examples))
			for _, ex := range deeplink.Examples {
				link, err := deeplink.Parse(ex)
				if err != nil {
					return writeErr(cmd, err)
				}
				var st nav.RootState
				st.Apply(link)
				out = append(out, map[string]any{
					"link":  deeplink.Scheme + "://" + deeplink.Format(link),
					"state": nav.ToWire(st),
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
