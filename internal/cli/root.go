package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"navdemo/internal/browse"
	"navdemo/internal/config"
	"navdemo/internal/deeplink"
	"navdemo/internal/format"
	"navdemo/internal/logging"
	"navdemo/internal/store"
	"navdemo/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Format     string
	PrettyJSON bool
	LogFile    string
	LogLevel   string
	Deeplink   string

	cfg       config.Config
	log       *slog.Logger
	logCloser io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "navdemo",
		Short:         "Navigation-state demo: tabs, drill-down browser, deep links",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  navdemo

  # Start the TUI three levels deep (shortcut for: navdemo open <link>)
  navdemo music/browser/0,1/child/0,1,2/child/0,1,2,3

  # Apply steps headlessly and print the resulting state
  navdemo state music/browser/0 tap=0 --failure-percent 0 --delay 0
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			link := app.Deeplink
			if link == "" {
				link = app.cfg.Deeplink
			}
			return runTUI(cmd, app, link)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config.toml (default: $NAVDEMO_CONFIG or ~/.navdemo/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("NAVDEMO_FORMAT", "json"), "Output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("NAVDEMO_LOG_FILE", ""), "Append JSON logs to this file (overrides log.path)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (overrides log.level)")
	cmd.PersistentFlags().StringVar(&app.Deeplink, "deeplink", "", "Deep link to apply at startup (overrides the config's deeplink)")

	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newStateCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newLinksCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) setup() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	app.cfg = cfg

	path := cfg.Log.Path
	if app.LogFile != "" {
		path = app.LogFile
	}
	level := cfg.Log.Level
	if app.LogLevel != "" {
		level = app.LogLevel
	}
	log, closer, err := logging.Open(path, level)
	if err != nil {
		return err
	}
	app.log, app.logCloser = log, closer
	if cfg.Path != "" {
		log.Debug("config loaded", "path", cfg.Path)
	}
	return nil
}

func (app *App) close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

func (app *App) newStore() *store.Store {
	return store.New(store.WithLogger(app.log))
}

func (app *App) newClient(bc config.BrowseConfig) browse.Client {
	return browse.NewMock(browse.MockOpts{
		Delay:          bc.Delay,
		FailurePercent: bc.FailurePercent,
	})
}

func runTUI(cmd *cobra.Command, app *App, link string) error {
	st := app.newStore()
	if strings.TrimSpace(link) != "" {
		l, err := deeplink.Parse(link)
		if err != nil {
			return writeErr(cmd, err)
		}
		st.Deeplink(l)
	}
	return tui.Run(st, app.newClient(app.cfg.Browse), tui.Options{
		Theme:  app.cfg.TUI.Theme,
		Glyphs: app.cfg.TUI.Glyphs,
		Log:    app.log,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
