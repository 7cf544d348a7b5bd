// Package deeplink parses and formats the textual deep-link syntax accepted by
// the CLI, e.g.
//
//	navdemo://music/browser/0,1,2/child/0,1/loading
//	music/alert/Deep%20Link%20Alert
//	sound
package deeplink

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"navdemo/internal/nav"
)

const Scheme = "navdemo"

type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid deep link %q: %s", e.Input, e.Reason)
}

// Examples lists one link per shape the grammar supports.
var Examples = []string{
	"music",
	"music/loading",
	"music/information",
	"music/alert/DeepLinkAlert",
	"music/browser/0,1,2",
	"music/browser/0,1/child/0,1,2/child/0,1,2,3",
	"music/browser/0/child/0,1/loading",
	"music/browser/0/alert/Request%20Error",
	"sound",
	"settings",
}

func Parse(s string) (nav.DeepLink, error) {
	input := s
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, Scheme+"://"); ok {
		s = rest
	}
	s = strings.Trim(s, "/")
	if s == "" {
		return nil, &ParseError{Input: input, Reason: "empty"}
	}
	segs := strings.Split(s, "/")

	switch strings.ToLower(segs[0]) {
	case "sound":
		if len(segs) > 1 {
			return nil, &ParseError{Input: input, Reason: "sound takes no destination"}
		}
		return nav.SoundLink{}, nil
	case "settings":
		if len(segs) > 1 {
			return nil, &ParseError{Input: input, Reason: "settings takes no destination"}
		}
		return nav.SettingsLink{}, nil
	case "music":
		d, err := parseMusic(segs[1:])
		if err != nil {
			return nil, &ParseError{Input: input, Reason: err.Error()}
		}
		return nav.MusicLink{Destination: d}, nil
	default:
		return nil, &ParseError{Input: input, Reason: fmt.Sprintf("unknown screen %q", segs[0])}
	}
}

func parseMusic(segs []string) (nav.MusicDestination, error) {
	if len(segs) == 0 {
		return nil, nil
	}
	switch segs[0] {
	case "loading":
		if len(segs) > 1 {
			return nil, fmt.Errorf("unexpected %q after loading", segs[1])
		}
		return nav.MusicLoading{}, nil
	case "information":
		if len(segs) > 1 {
			return nil, fmt.Errorf("unexpected %q after information", segs[1])
		}
		return nav.MusicInformation{}, nil
	case "alert":
		a, err := parseAlert(segs[1:])
		if err != nil {
			return nil, err
		}
		return nav.MusicRequestAlert{Alert: a}, nil
	case "browser":
		b, err := parseBrowser(segs[1:])
		if err != nil {
			return nil, err
		}
		return nav.MusicBrowser{State: b}, nil
	default:
		return nil, fmt.Errorf("unknown music destination %q", segs[0])
	}
}

// parseBrowser reads "<csv>" followed by an optional destination. Children
// nest by recursion, so "0/child/0,1/child/0,1,2" is a chain of three.
func parseBrowser(segs []string) (nav.BrowserState, error) {
	if len(segs) == 0 {
		return nav.BrowserState{}, fmt.Errorf("browser needs contents")
	}
	contents, err := parseContents(segs[0])
	if err != nil {
		return nav.BrowserState{}, err
	}
	s := nav.BrowserState{Contents: contents}
	rest := segs[1:]
	if len(rest) == 0 {
		return s, nil
	}
	switch rest[0] {
	case "loading":
		if len(rest) > 1 {
			return nav.BrowserState{}, fmt.Errorf("unexpected %q after loading", rest[1])
		}
		s.Destination = nav.BrowserLoading{}
	case "alert":
		a, err := parseAlert(rest[1:])
		if err != nil {
			return nav.BrowserState{}, err
		}
		s.Destination = nav.BrowserRequestAlert{Alert: a}
	case "child":
		child, err := parseBrowser(rest[1:])
		if err != nil {
			return nav.BrowserState{}, err
		}
		s.Destination = nav.BrowserChild{State: child}
	default:
		return nav.BrowserState{}, fmt.Errorf("unknown browser destination %q", rest[0])
	}
	return s, nil
}

func parseAlert(segs []string) (nav.AlertState, error) {
	if len(segs) != 1 || segs[0] == "" {
		return nav.AlertState{}, fmt.Errorf("alert needs exactly one title segment")
	}
	if segs[0] == emptyTitle {
		return nav.NewAlert(""), nil
	}
	title, err := url.PathUnescape(segs[0])
	if err != nil {
		return nav.AlertState{}, fmt.Errorf("alert title: %w", err)
	}
	return nav.NewAlert(title), nil
}

// emptyTitle stands for an alert without a title. A literal "-" title is
// written escaped.
const emptyTitle = "-"

func formatTitle(title string) string {
	switch title {
	case "":
		return emptyTitle
	case emptyTitle:
		return "%2D"
	default:
		return url.PathEscape(title)
	}
}

func parseContents(s string) ([]int, error) {
	if s == "" || s == "-" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("contents: %q is not an integer", p)
		}
		out = append(out, n)
	}
	return out, nil
}

// Format renders link in the syntax Parse accepts, without the scheme. Only
// alert titles are part of the syntax; an alert's message is not written.
func Format(link nav.DeepLink) string {
	switch l := link.(type) {
	case nav.SoundLink:
		return "sound"
	case nav.SettingsLink:
		return "settings"
	case nav.MusicLink:
		return strings.Join(append([]string{"music"}, formatMusic(l.Destination)...), "/")
	default:
		return ""
	}
}

func formatMusic(d nav.MusicDestination) []string {
	switch d := d.(type) {
	case nav.MusicLoading:
		return []string{"loading"}
	case nav.MusicInformation:
		return []string{"information"}
	case nav.MusicRequestAlert:
		return []string{"alert", formatTitle(d.Alert.Title)}
	case nav.MusicBrowser:
		return append([]string{"browser"}, formatBrowser(d.State)...)
	default:
		return nil
	}
}

func formatBrowser(s nav.BrowserState) []string {
	out := []string{formatContents(s.Contents)}
	switch d := s.Destination.(type) {
	case nav.BrowserLoading:
		out = append(out, "loading")
	case nav.BrowserRequestAlert:
		out = append(out, "alert", formatTitle(d.Alert.Title))
	case nav.BrowserChild:
		out = append(out, "child")
		out = append(out, formatBrowser(d.State)...)
	}
	return out
}

func formatContents(c []int) string {
	if len(c) == 0 {
		return "-"
	}
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Looks reports whether s is plausibly a deep link rather than a subcommand
// name. Used by argv rewriting in cmd/navdemo.
func Looks(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, Scheme+"://") {
		return true
	}
	head, _, hasSlash := strings.Cut(s, "/")
	return hasSlash && (head == "music" || head == "sound" || head == "settings")
}
