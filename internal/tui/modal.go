package tui

import (
	"strings"

	"navdemo/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws a titled surface. No borders inside the box: some
// terminals leave background artifacts when bordered components nest in a
// colored surface.
func renderModalBox(width int, title string, body string, accent lipgloss.TerminalColor) string {
	bodyW := modalBodyWidth(width)

	head := lipgloss.NewStyle().
		Width(bodyW).
		Bold(true).
		Foreground(colorModalHeadFg).
		Background(colorModalHeadBg).
		Render(title)

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(accent)

	return box.Render(head + "\n\n" + lipgloss.NewStyle().Width(bodyW).Render(body))
}

func renderAlertModal(width int, a nav.AlertState) string {
	bodyW := modalBodyWidth(width)

	btn := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true).
		Render("OK")

	var parts []string
	if msg := strings.TrimSpace(a.Message); msg != "" {
		parts = append(parts, msg, "")
	}
	parts = append(parts,
		btn,
		"",
		styleMuted().Width(bodyW).Render("enter/esc: dismiss"),
	)
	return renderModalBox(width, a.Title, strings.Join(parts, "\n"), colorAlertAccent)
}

func renderInformationSheet(width int) string {
	bodyW := modalBodyWidth(width)
	body := renderMarkdown(informationSheetMarkdown(), bodyW)
	body += "\n\n" + styleMuted().Width(bodyW).Render("esc: dismiss")
	return renderModalBox(width, "Information", body, colorAccent)
}

func renderLoadingOverlay(width int, spin string) string {
	return renderModalBox(width, "Loading", spin+" Loading"+glyphEllipsis(), colorAccent)
}
