package format

import (
	"bytes"
	"strings"
	"testing"

	"navdemo/internal/nav"
)

func sample() nav.WireRoot {
	return nav.ToWire(nav.RootState{
		Music: nav.MusicState{Destination: nav.MusicBrowser{State: nav.BrowserState{
			Contents:    []int{0, 1},
			Destination: nav.BrowserRequestAlert{Alert: nav.NewAlert("Request Error")},
		}}},
	})
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sample(), "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"selectedTab":"music","music":{"destination":{"kind":"browser","browser":{"title":"Sum: 1","contents":[0,1],"destination":{"kind":"requestAlert","alert":{"title":"Request Error"}}}}}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected json:\n got: %s\nwant: %s", got, want)
	}
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sample(), "yaml", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"selectedTab: music\n",
		"kind: browser\n",
		"contents: [0, 1]\n",
		"title: Request Error\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in yaml output:\n%s", want, got)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
