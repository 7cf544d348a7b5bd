package deeplink

import (
	"errors"
	"testing"

	"navdemo/internal/nav"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want nav.DeepLink
	}{
		{name: "sound", in: "sound", want: nav.SoundLink{}},
		{name: "settings with scheme", in: "navdemo://settings", want: nav.SettingsLink{}},
		{name: "music root", in: "music", want: nav.MusicLink{}},
		{name: "music loading", in: "music/loading", want: nav.MusicLink{Destination: nav.MusicLoading{}}},
		{name: "music information", in: "/music/information/", want: nav.MusicLink{Destination: nav.MusicInformation{}}},
		{
			name: "music alert escaped",
			in:   "music/alert/Deep%20Link",
			want: nav.MusicLink{Destination: nav.MusicRequestAlert{Alert: nav.NewAlert("Deep Link")}},
		},
		{
			name: "browser chain",
			in:   "navdemo://music/browser/0,1,2/child/0,1/loading",
			want: nav.MusicLink{Destination: nav.MusicBrowser{State: nav.BrowserState{
				Contents: []int{0, 1, 2},
				Destination: nav.BrowserChild{State: nav.BrowserState{
					Contents:    []int{0, 1},
					Destination: nav.BrowserLoading{},
				}},
			}}},
		},
		{
			name: "browser empty contents",
			in:   "music/browser/-",
			want: nav.MusicLink{Destination: nav.MusicBrowser{State: nav.BrowserState{Contents: []int{}}}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"video",
		"sound/loading",
		"settings/x",
		"music/browser",
		"music/browser/a,b",
		"music/browser/0/child",
		"music/browser/0/sheet",
		"music/alert",
		"music/alert/a/b",
		"music/loading/extra",
		"music/information/extra",
		"music/browser/0/loading/extra",
	} {
		_, err := Parse(in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): expected *ParseError; got %v", in, err)
		}
		if pe.Input != in {
			t.Fatalf("Parse(%q): expected input echoed; got %q", in, pe.Input)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, ex := range Examples {
		link, err := Parse(ex)
		if err != nil {
			t.Fatalf("Parse(%q): %v", ex, err)
		}
		if got := Format(link); got != ex {
			t.Fatalf("Format(Parse(%q)) = %q", ex, got)
		}
	}
}

func TestFormat_AlertTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alert nav.AlertState
		want  string
	}{
		{name: "empty title", alert: nav.NewAlert(""), want: "music/alert/-"},
		{name: "dash title", alert: nav.NewAlert("-"), want: "music/alert/%2D"},
		{name: "spaces", alert: nav.NewAlert("Request Error"), want: "music/alert/Request%20Error"},
		{name: "message not written", alert: nav.AlertState{Title: "T", Message: "details"}, want: "music/alert/T"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Format(nav.MusicLink{Destination: nav.MusicRequestAlert{Alert: tc.alert}})
			if got != tc.want {
				t.Fatalf("expected %q; got %q", tc.want, got)
			}
			link, err := Parse(got)
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			a, ok := nav.MusicAlertCase.Extract(link.(nav.MusicLink).Destination)
			if !ok || a.Title != tc.alert.Title {
				t.Fatalf("expected title %q after round trip; got %#v", tc.alert.Title, link)
			}
		})
	}

	browser := nav.MusicLink{Destination: nav.MusicBrowser{State: nav.BrowserState{
		Contents:    []int{0},
		Destination: nav.BrowserRequestAlert{Alert: nav.NewAlert("")},
	}}}
	if got := Format(browser); got != "music/browser/0/alert/-" {
		t.Fatalf("expected empty browser alert title as -; got %q", got)
	}
}

func TestLooks(t *testing.T) {
	t.Parallel()

	yes := []string{"navdemo://sound", "music/browser/0", "sound/"}
	no := []string{"music", "state", "browse", "item-1", "links"}
	for _, s := range yes {
		if !Looks(s) {
			t.Fatalf("expected Looks(%q)", s)
		}
	}
	for _, s := range no {
		if Looks(s) {
			t.Fatalf("expected !Looks(%q)", s)
		}
	}
}
