// Package tui renders the navigation state as a Bubble Tea program.
//
// The model never owns navigation state. Every key press becomes a store
// transition and the view is drawn from the store's latest snapshot.
package tui

import (
	"log/slog"

	"navdemo/internal/browse"
	"navdemo/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Theme is light, dark or auto.
	Theme string
	// Glyphs is unicode or ascii.
	Glyphs string
	Log    *slog.Logger
}

func Run(st *store.Store, client browse.Client, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(st, client, opts.Log)
	defer m.close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
