package docs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"deeplinks", "information", "keys", "state"}
	if diff := cmp.Diff(want, Topics()); diff != "" {
		t.Fatalf("unexpected topics (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	for _, topic := range Topics() {
		body, ok := Get(topic)
		if !ok || !strings.HasPrefix(body, "# ") {
			t.Fatalf("expected %q to start with a heading; got ok=%v body=%q", topic, ok, body)
		}
	}

	if _, ok := Get(" KEYS "); !ok {
		t.Fatalf("expected topic lookup to ignore case and space")
	}
	for _, bad := range []string{"", "missing", "../docs", `content\keys`} {
		if _, ok := Get(bad); ok {
			t.Fatalf("expected %q to be unknown", bad)
		}
	}
}
