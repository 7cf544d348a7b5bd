package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"navdemo/internal/browse"
	"navdemo/internal/nav"
	"navdemo/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Buttons on the music root screen, top to bottom.
const (
	musicButtonInformation = iota
	musicButtonContainer
	musicButtonCount
)

// The music root screen always browses the same container.
const rootContainerItem = 0

type stateChangedMsg struct{}

type browseDoneMsg struct {
	req      store.BrowseRequest
	contents []int
	err      error
}

type appModel struct {
	store  *store.Store
	client browse.Client
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// changes is signalled by the store subscription. It is buffered so a
	// transition made from inside Update never blocks on the program loop.
	changes     chan struct{}
	unsubscribe func()

	state nav.RootState

	width  int
	height int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	musicCursor int

	browser      list.Model
	browserKey   string
	browserDepth int
	// cursors remembers the selected row per browser level so going back
	// lands where the user left.
	cursors map[int]int

	flash string
}

func newAppModel(st *store.Store, client browse.Client, log *slog.Logger) *appModel {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styleChrome()

	m := &appModel{
		store:   st,
		client:  client,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		changes: make(chan struct{}, 1),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		browser: newList("", nil),
		cursors: map[int]int{},
		// Assume a small terminal until the first WindowSizeMsg.
		width:  80,
		height: 24,
	}
	m.musicCursor = musicButtonContainer
	m.unsubscribe = st.Subscribe(func(nav.RootState) {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	m.refresh()
	return m
}

func (m *appModel) close() {
	m.cancel()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func browseCmd(ctx context.Context, client browse.Client, req store.BrowseRequest) tea.Cmd {
	return func() tea.Msg {
		contents, err := client.Browse(ctx, req.Item)
		return browseDoneMsg{req: req, contents: contents, err: err}
	}
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.changes), m.spinner.Tick)
}

// refresh pulls the latest snapshot and keeps the browser list in step with
// the innermost level.
func (m *appModel) refresh() {
	m.state = m.store.State()

	bs, ok := nav.MusicBrowserCase.Extract(m.state.Music.Destination)
	if !ok {
		m.browserKey = ""
		m.browserDepth = 0
		clear(m.cursors)
		return
	}

	inner := bs.Innermost()
	depth := bs.Depth()
	k := fmt.Sprintf("%d:%v", depth, inner.Contents)
	if k == m.browserKey {
		return
	}
	if m.browserKey != "" {
		m.cursors[m.browserDepth] = m.browser.Index()
	}
	for d := range m.cursors {
		if d > depth {
			delete(m.cursors, d)
		}
	}

	m.browser.SetItems(contentItems(inner.Contents))
	m.browser.Title = inner.Title()
	m.browser.Select(m.cursors[depth])
	m.browserKey = k
	m.browserDepth = depth
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeBrowser()
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case browseDoneMsg:
		if err := m.store.CompleteBrowse(msg.req, msg.contents, msg.err); err != nil {
			m.log.Debug("browse result ignored", "id", msg.req.ID, "err", err)
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	if key.Matches(msg, m.keys.Quit) {
		m.close()
		return m, tea.Quit
	}

	// Monitoring alerts cover every tab until acknowledged.
	if slot, ok := m.visibleMonitoringSlot(); ok {
		if key.Matches(msg, m.keys.Enter, m.keys.Back) {
			m.report(m.store.DismissMonitoringAlert(slot))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(m.state.SelectedTab + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab(m.state.SelectedTab - 1)
		return m, nil
	case key.Matches(msg, m.keys.TabMusic):
		m.selectTab(nav.TabMusic)
		return m, nil
	case key.Matches(msg, m.keys.TabSound):
		m.selectTab(nav.TabSound)
		return m, nil
	case key.Matches(msg, m.keys.TabSettings):
		m.selectTab(nav.TabSettings)
		return m, nil
	}

	switch m.state.SelectedTab {
	case nav.TabMusic:
		return m.updateMusicKey(msg)
	case nav.TabSettings:
		return m.updateSettingsKey(msg)
	}
	return m, nil
}

func (m *appModel) selectTab(t nav.Tab) {
	tabs := nav.Tabs()
	n := nav.Tab(len(tabs))
	t = ((t % n) + n) % n
	m.store.SelectTab(t)
	m.refresh()
}

func (m *appModel) updateMusicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch d := m.state.Music.Destination.(type) {
	case nil:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.musicCursor > 0 {
				m.musicCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.musicCursor < musicButtonCount-1 {
				m.musicCursor++
			}
		case key.Matches(msg, m.keys.Enter):
			if m.musicCursor == musicButtonInformation {
				m.report(m.store.ShowInformation())
				m.refresh()
				return m, nil
			}
			req, err := m.store.BeginMusicBrowse(rootContainerItem)
			m.refresh()
			if err != nil {
				m.report(err)
				return m, nil
			}
			return m, browseCmd(m.ctx, m.client, req)
		}
		return m, nil

	case nav.MusicLoading:
		return m, nil

	case nav.MusicInformation, nav.MusicRequestAlert:
		if key.Matches(msg, m.keys.Enter, m.keys.Back) {
			if _, ok := d.(nav.MusicInformation); ok {
				m.report(m.store.DismissInformation())
			} else {
				m.report(m.store.DismissAlert())
			}
			m.refresh()
		}
		return m, nil

	case nav.MusicBrowser:
		return m.updateBrowserKey(msg, d.State.Innermost())
	}
	return m, nil
}

func (m *appModel) updateBrowserKey(msg tea.KeyMsg, inner nav.BrowserState) (tea.Model, tea.Cmd) {
	switch inner.Destination.(type) {
	case nav.BrowserLoading:
		return m, nil
	case nav.BrowserRequestAlert:
		if key.Matches(msg, m.keys.Enter, m.keys.Back) {
			m.report(m.store.DismissAlert())
			m.refresh()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.report(m.store.Pop())
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		it, ok := m.browser.SelectedItem().(contentItem)
		if !ok {
			return m, nil
		}
		req, err := m.store.BeginBrowserBrowse(int(it))
		m.refresh()
		if err != nil {
			m.report(err)
			return m, nil
		}
		return m, browseCmd(m.ctx, m.client, req)
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	return m, cmd
}

func (m *appModel) updateSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	raise := map[nav.MonitoringSlot]key.Binding{
		nav.MonitoringA: m.keys.RaiseA,
		nav.MonitoringB: m.keys.RaiseB,
		nav.MonitoringC: m.keys.RaiseC,
	}
	for _, slot := range nav.MonitoringSlots() {
		if key.Matches(msg, raise[slot]) {
			m.store.RaiseMonitoringAlert(slot, monitoringAlert(slot))
			m.refresh()
			break
		}
	}
	return m, nil
}

func monitoringAlert(slot nav.MonitoringSlot) nav.AlertState {
	return nav.AlertState{
		Title:   fmt.Sprintf("Monitoring Alert %s", slot),
		Message: "Raised from the settings tab.",
	}
}

// visibleMonitoringSlot returns the first raised monitoring alert. Several
// may be raised at once; they are shown one after another.
func (m *appModel) visibleMonitoringSlot() (nav.MonitoringSlot, bool) {
	for _, slot := range nav.MonitoringSlots() {
		if m.state.Monitoring(slot).Valid {
			return slot, true
		}
	}
	return 0, false
}

// report surfaces a refused action in the footer. Refusals are expected
// (the user pressed a key the screen cannot honour right now).
func (m *appModel) report(err error) {
	if err == nil {
		return
	}
	m.log.Debug("action refused", "err", err)
	switch {
	case errors.Is(err, store.ErrBusy):
		m.flash = "busy"
	default:
		m.flash = err.Error()
	}
}
