package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply_SoundLeavesOtherTabsUntouched(t *testing.T) {
	t.Parallel()

	s := RootState{
		Music:       MusicState{Destination: MusicBrowser{State: chain(2)}},
		MonitoringB: Some(NewAlert("disk")),
	}
	before := s.Clone()

	s.Apply(SoundLink{})

	if s.SelectedTab != TabSound {
		t.Fatalf("expected sound tab; got %v", s.SelectedTab)
	}
	if diff := cmp.Diff(before.Music, s.Music); diff != "" {
		t.Fatalf("music state changed (-want +got):\n%s", diff)
	}
	if s.Settings != before.Settings || s.MonitoringB != before.MonitoringB {
		t.Fatalf("expected settings and monitoring untouched")
	}
}

func TestApply_Settings(t *testing.T) {
	t.Parallel()

	s := RootState{Music: MusicState{Destination: MusicLoading{}}}
	s.Apply(SettingsLink{})
	if s.SelectedTab != TabSettings {
		t.Fatalf("expected settings tab; got %v", s.SelectedTab)
	}
	if _, ok := s.Music.Destination.(MusicLoading); !ok {
		t.Fatalf("expected music destination untouched; got %#v", s.Music.Destination)
	}
}

func TestApply_MusicDeepChain(t *testing.T) {
	t.Parallel()

	s := RootState{SelectedTab: TabSettings, Music: MusicState{Destination: MusicRequestAlert{Alert: NewAlert("old")}}}
	want := chain(3)
	s.Apply(MusicLink{Destination: MusicBrowser{State: want}})

	if s.SelectedTab != TabMusic {
		t.Fatalf("expected music tab; got %v", s.SelectedTab)
	}
	got, ok := Project(Ref(&s.Music.Destination), MusicBrowserCase).Get().Get()
	if !ok {
		t.Fatalf("expected browser destination; got %#v", s.Music.Destination)
	}
	if !got.Equal(want) || got.Depth() != 3 {
		t.Fatalf("expected exactly the 3-deep chain; got depth %d", got.Depth())
	}

	// The applied chain must not alias the link's slices.
	want.Contents[0] = 99
	if got, _ := Project(Ref(&s.Music.Destination), MusicBrowserCase).Get().Get(); got.Contents[0] == 99 {
		t.Fatalf("expected applied chain to be a copy")
	}
}

func TestApply_MusicNilClears(t *testing.T) {
	t.Parallel()

	s := RootState{Music: MusicState{Destination: MusicInformation{}}}
	s.Apply(MusicLink{})
	if s.Music.Destination != nil {
		t.Fatalf("expected cleared destination; got %#v", s.Music.Destination)
	}
}

func TestParseTab(t *testing.T) {
	t.Parallel()

	for _, tab := range Tabs() {
		got, err := ParseTab(" " + tab.String() + " ")
		if err != nil || got != tab {
			t.Fatalf("expected %v; got %v err=%v", tab, got, err)
		}
	}
	if _, err := ParseTab("video"); err == nil {
		t.Fatalf("expected error for unknown tab")
	}
}

func TestToWire(t *testing.T) {
	t.Parallel()

	s := RootState{
		Music: MusicState{Destination: MusicBrowser{State: BrowserState{
			Contents:    []int{0},
			Destination: BrowserChild{State: BrowserState{Contents: []int{0, 1}, Destination: BrowserLoading{}}},
		}}},
		MonitoringC: Some(NewAlert("net")),
	}
	w := ToWire(s)

	if w.SelectedTab != "music" {
		t.Fatalf("expected selectedTab music; got %q", w.SelectedTab)
	}
	d := w.Music.Destination
	if d == nil || d.Kind != "browser" || d.Browser == nil {
		t.Fatalf("expected browser destination; got %#v", d)
	}
	child := d.Browser.Destination
	if child == nil || child.Kind != "child" || child.Browser.Title != "Sum: 1" {
		t.Fatalf("expected child level; got %#v", child)
	}
	if child.Browser.Destination == nil || child.Browser.Destination.Kind != "loading" {
		t.Fatalf("expected loading on innermost; got %#v", child.Browser.Destination)
	}
	if w.Monitoring["c"].Title != "net" || len(w.Monitoring) != 1 {
		t.Fatalf("expected monitoring c only; got %#v", w.Monitoring)
	}
}
