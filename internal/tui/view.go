package tui

import (
	"fmt"
	"strings"

	"navdemo/internal/nav"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Rows taken by the tab bar, breadcrumb, level title and footer.
const chromeRows = 6

var tabLabels = map[nav.Tab]string{
	nav.TabMusic:    "Music",
	nav.TabSound:    "Sound",
	nav.TabSettings: "Settings",
}

func (m *appModel) resizeBrowser() {
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	m.browser.SetSize(m.width, h)
}

func (m *appModel) View() string {
	bodyH := m.height - 4
	if bodyH < 1 {
		bodyH = 1
	}

	body := m.viewBody()
	if overlay := m.viewOverlay(); overlay != "" {
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body)
	}

	return strings.Join([]string{
		m.viewTabBar(),
		m.viewBreadcrumb(),
		body,
		m.viewFooter(),
	}, "\n")
}

func (m *appModel) viewTabBar() string {
	sep := styleChrome().Render(" " + glyphTabSep() + " ")
	labels := make([]string, 0, len(nav.Tabs()))
	for i, t := range nav.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[t])
		if t == m.state.SelectedTab {
			label = styleSelected().Padding(0, 1).Render(label)
		} else {
			label = styleMuted().Padding(0, 1).Render(label)
		}
		labels = append(labels, label)
	}
	return truncateLine(strings.Join(labels, sep), m.width)
}

func (m *appModel) viewBreadcrumb() string {
	parts := []string{tabLabels[m.state.SelectedTab]}
	if m.state.SelectedTab == nav.TabMusic {
		if bs, ok := nav.MusicBrowserCase.Extract(m.state.Music.Destination); ok {
			for _, level := range bs.Chain() {
				parts = append(parts, level.Title())
			}
		}
	}
	crumb := strings.Join(parts, " "+glyphCrumbSep()+" ")
	return truncateLine(styleChrome().Render(crumb), m.width)
}

func (m *appModel) viewBody() string {
	switch m.state.SelectedTab {
	case nav.TabMusic:
		return m.viewMusic()
	case nav.TabSound:
		return styleMuted().Render("Nothing to hear yet.")
	case nav.TabSettings:
		return m.viewSettings()
	}
	return ""
}

func (m *appModel) viewMusic() string {
	if bs, ok := nav.MusicBrowserCase.Extract(m.state.Music.Destination); ok {
		title := lipgloss.NewStyle().Bold(true).Render(bs.Innermost().Title())
		return title + "\n" + m.browser.View()
	}

	labels := []string{
		musicButtonInformation: "Pop information sheet",
		musicButtonContainer:   fmt.Sprintf("Container for '%d'", rootContainerItem),
	}
	var b strings.Builder
	for i, label := range labels {
		if i == m.musicCursor {
			b.WriteString(styleSelected().Render(glyphCursor() + " " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) viewSettings() string {
	lines := []string{"Press a, b or c to raise a monitoring alert.", ""}
	for _, slot := range nav.MonitoringSlots() {
		st := styleDisabled()
		status := "clear"
		if m.state.Monitoring(slot).Valid {
			st = lipgloss.NewStyle().Foreground(colorAlertAccent)
			status = "raised"
		}
		lines = append(lines, st.Render(fmt.Sprintf("%s %s: %s", glyphBullet(), strings.ToUpper(slot.String()), status)))
	}
	return strings.Join(lines, "\n")
}

// viewOverlay returns whatever covers the current screen, innermost first
// after monitoring alerts, which cover everything.
func (m *appModel) viewOverlay() string {
	if slot, ok := m.visibleMonitoringSlot(); ok {
		a, _ := m.state.Monitoring(slot).Get()
		return renderAlertModal(m.width, a)
	}
	if m.state.SelectedTab != nav.TabMusic {
		return ""
	}

	switch d := m.state.Music.Destination.(type) {
	case nav.MusicLoading:
		return renderLoadingOverlay(m.width, m.spinner.View())
	case nav.MusicInformation:
		return renderInformationSheet(m.width)
	case nav.MusicRequestAlert:
		return renderAlertModal(m.width, d.Alert)
	case nav.MusicBrowser:
		switch bd := d.State.Innermost().Destination.(type) {
		case nav.BrowserLoading:
			return renderLoadingOverlay(m.width, m.spinner.View())
		case nav.BrowserRequestAlert:
			return renderAlertModal(m.width, bd.Alert)
		}
	}
	return ""
}

func (m *appModel) viewFooter() string {
	flash := ""
	if m.flash != "" {
		flash = styleMuted().Render(m.flash)
	}
	return flash + "\n" + truncateLine(m.help.View(m.keys), m.width)
}

func truncateLine(s string, width int) string {
	if width <= 0 || xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, glyphEllipsis())
}
