package tui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Plain output keeps view assertions independent of the terminal.
	lipgloss.SetColorProfile(termenv.Ascii)
	setGlyphs(glyphSetUnicode)
	os.Exit(m.Run())
}
