package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"navdemo/internal/browse"
	"navdemo/internal/deeplink"
	"navdemo/internal/nav"
	"navdemo/internal/store"

	"github.com/spf13/cobra"
)

func newStateCmd(app *App) *cobra.Command {
	var (
		failurePercent int
		delay          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "state [step...]",
		Short: "Apply steps to a fresh state and print the result",
		Long: strings.TrimSpace(`
Apply steps in order to a fresh state, then print it.

Steps:
  <deep link>        dispatch a deep link (see: navdemo links)
  tap=<item>         browse item on the visible screen (music root or innermost browser)
  dismiss            acknowledge the visible request alert
  pop                go back one browser level
  info / close-info  show / dismiss the information sheet
  tab=<name>         select music|sound|settings
  raise=<slot>:<title>, clear=<slot>
                     raise / dismiss monitoring alert a|b|c

Browse taps run synchronously through the mock service.
`),
		Example: strings.TrimSpace(`
  navdemo state music/browser/0 tap=0 tap=1 --failure-percent 0 --delay 0
  navdemo state music tap=0 dismiss --failure-percent 100 --format yaml
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := app.cfg.Browse
			if cmd.Flags().Changed("failure-percent") {
				bc.FailurePercent = failurePercent
			}
			if cmd.Flags().Changed("delay") {
				bc.Delay = delay
			}
			r := stepRunner{st: app.newStore(), client: app.newClient(bc)}
			for i, step := range args {
				if err := r.run(cmd.Context(), step); err != nil {
					return writeErr(cmd, errStep(i, step, err))
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": nav.ToWire(r.st.State()),
				"meta": map[string]any{
					"revision": r.st.Revision(),
					"steps":    len(args),
				},
			})
		},
	}

	cmd.Flags().IntVar(&failurePercent, "failure-percent", 0, "Override browse.failure_percent")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Override browse.delay")
	return cmd
}

type stepRunner struct {
	st     *store.Store
	client browse.Client
}

func (r stepRunner) run(ctx context.Context, step string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name, arg, _ := strings.Cut(strings.TrimSpace(step), "=")
	switch name {
	case "tap":
		item, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("tap needs an integer item: %q", arg)
		}
		return r.tap(ctx, item)
	case "dismiss":
		return r.st.DismissAlert()
	case "pop":
		return r.st.Pop()
	case "info":
		return r.st.ShowInformation()
	case "close-info":
		return r.st.DismissInformation()
	case "tab":
		t, err := nav.ParseTab(arg)
		if err != nil {
			return err
		}
		r.st.SelectTab(t)
		return nil
	case "raise":
		slotName, title, ok := strings.Cut(arg, ":")
		if !ok || strings.TrimSpace(title) == "" {
			return errors.New("raise needs <slot>:<title>")
		}
		slot, err := parseSlot(slotName)
		if err != nil {
			return err
		}
		r.st.RaiseMonitoringAlert(slot, nav.NewAlert(title))
		return nil
	case "clear":
		slot, err := parseSlot(arg)
		if err != nil {
			return err
		}
		return r.st.DismissMonitoringAlert(slot)
	}

	link, err := deeplink.Parse(step)
	if err != nil {
		return err
	}
	r.st.Deeplink(link)
	return nil
}

// tap browses on whatever screen of the music tab is visible.
func (r stepRunner) tap(ctx context.Context, item int) error {
	var (
		req store.BrowseRequest
		err error
	)
	if r.st.BrowserBinding().Get().Valid {
		req, err = r.st.BeginBrowserBrowse(item)
	} else {
		req, err = r.st.BeginMusicBrowse(item)
	}
	if err != nil {
		return err
	}
	return r.st.RunBrowse(ctx, r.client, req)
}

func parseSlot(s string) (nav.MonitoringSlot, error) {
	for _, slot := range nav.MonitoringSlots() {
		if strings.EqualFold(strings.TrimSpace(s), slot.String()) {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("unknown monitoring slot: %q", s)
}
