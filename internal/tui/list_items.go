package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
)

// contentItem is one row of a browser level.
type contentItem int

func (i contentItem) Title() string       { return strconv.Itoa(int(i)) }
func (i contentItem) Description() string { return "" }
func (i contentItem) FilterValue() string { return i.Title() }

func contentItems(contents []int) []list.Item {
	items := make([]list.Item, 0, len(contents))
	for _, c := range contents {
		items = append(items, contentItem(c))
	}
	return items
}

func newList(title string, items []list.Item) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(items, d, 0, 0)
	l.Title = title
	// We render our own footer + breadcrumb, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Enter taps a row; a filter prompt would swallow it.
	l.SetFilteringEnabled(false)
	// ESC is "back" here and q is handled by the app.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	goToStartKeys := append([]string{}, l.KeyMap.GoToStart.Keys()...)
	goToStartKeys = append(goToStartKeys, "<")
	l.KeyMap.GoToStart.SetKeys(goToStartKeys...)

	goToEndKeys := append([]string{}, l.KeyMap.GoToEnd.Keys()...)
	goToEndKeys = append(goToEndKeys, ">")
	l.KeyMap.GoToEnd.SetKeys(goToEndKeys...)
	return l
}
