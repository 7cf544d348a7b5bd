package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderModalBox_UsesLightBackground_WhenThemeForcedLight(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
	})

	applyThemePreference("light")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected HasDarkBackground=false after forcing light theme")
	}

	out := renderModalBox(80, "Title", "Body", colorAccent)

	// colorSurfaceBg is ac("255","235") so the light bg should appear in the ANSI output.
	if !strings.Contains(out, "48;5;255") {
		t.Fatalf("expected modal to include light background (48;5;255); got: %q", out)
	}
}

func TestApplyThemePreference(t *testing.T) {
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })

	tests := []struct {
		name      string
		theme     string
		colorfgbg string
		start     bool
		wantDark  bool
	}{
		{name: "forced dark", theme: "dark", start: false, wantDark: true},
		{name: "forced light", theme: "LIGHT", start: true, wantDark: false},
		{name: "auto dark bg", theme: "auto", colorfgbg: "15;0", start: false, wantDark: true},
		{name: "auto light bg", theme: "", colorfgbg: "0;15", start: true, wantDark: false},
		{name: "auto unparsable keeps current", theme: "auto", colorfgbg: "default", start: true, wantDark: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tc.colorfgbg)
			lipgloss.SetHasDarkBackground(tc.start)
			applyThemePreference(tc.theme)
			if got := lipgloss.HasDarkBackground(); got != tc.wantDark {
				t.Fatalf("expected dark=%v; got %v", tc.wantDark, got)
			}
		})
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("expected untouched line; got %q", got)
	}
	got := truncateLine("Music › Sum: 1 › Sum: 3", 10)
	if w := len([]rune(got)); w > 10 {
		t.Fatalf("expected at most 10 cells; got %d (%q)", w, got)
	}
	if !strings.HasSuffix(got, glyphEllipsis()) {
		t.Fatalf("expected ellipsis suffix; got %q", got)
	}
}
