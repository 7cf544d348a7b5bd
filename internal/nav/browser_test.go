package nav

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chain builds a browser chain whose level i holds contents 0..i.
func chain(depth int) BrowserState {
	levels := make([]BrowserState, depth)
	for i := range levels {
		contents := make([]int, i+1)
		for j := range contents {
			contents[j] = j
		}
		levels[i] = BrowserState{Contents: contents}
	}
	out := levels[depth-1]
	for i := depth - 2; i >= 0; i-- {
		parent := levels[i]
		parent.Destination = BrowserChild{State: out}
		out = parent
	}
	return out
}

func TestInnermost_ReturnsDeepestLevel(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= 6; depth++ {
		s := chain(depth)
		if got := s.Depth(); got != depth {
			t.Fatalf("depth %d: expected Depth %d; got %d", depth, depth, got)
		}
		in := s.Innermost()
		if len(in.Contents) != depth {
			t.Fatalf("depth %d: expected innermost with %d contents; got %v", depth, depth, in.Contents)
		}
		if in.Destination != nil {
			t.Fatalf("depth %d: expected innermost without destination; got %#v", depth, in.Destination)
		}
	}
}

func TestInnermost_StopsAtNonChildDestinations(t *testing.T) {
	t.Parallel()

	for _, d := range []BrowserDestination{nil, BrowserLoading{}, BrowserRequestAlert{Alert: NewAlert("x")}} {
		s := BrowserState{Contents: []int{0}, Destination: BrowserChild{State: BrowserState{Contents: []int{0, 1}, Destination: d}}}
		in := s.Innermost()
		if !in.Equal(BrowserState{Contents: []int{0, 1}, Destination: d}) {
			t.Fatalf("expected second level as innermost for %#v; got %#v", d, in)
		}
	}
}

func TestSetInnermost_RoundTrip(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= 6; depth++ {
		s := chain(depth)
		before := s.Chain()

		v := BrowserState{Contents: []int{42}, Destination: BrowserRequestAlert{Alert: NewAlert("Request Error")}}
		s.SetInnermost(v)

		if got := s.Innermost(); !got.Equal(v) {
			t.Fatalf("depth %d: expected innermost %#v; got %#v", depth, v, got)
		}
		if got := s.Depth(); got != depth {
			t.Fatalf("depth %d: expected depth to stay %d; got %d", depth, depth, got)
		}
		after := s.Chain()
		for i := 0; i < depth-1; i++ {
			if diff := cmp.Diff(before[i].Contents, after[i].Contents); diff != "" {
				t.Fatalf("depth %d: ancestor %d changed (-want +got):\n%s", depth, i, diff)
			}
		}
	}
}

func TestSetInnermost_DepthOneReplacesWholeNode(t *testing.T) {
	t.Parallel()

	s := BrowserState{Contents: []int{0}}
	if got := s.Innermost(); !reflect.DeepEqual(got, s) {
		t.Fatalf("expected depth-1 node to be its own innermost; got %#v", got)
	}

	v := BrowserState{Contents: []int{7, 8}, Destination: BrowserLoading{}}
	s.SetInnermost(v)
	if !reflect.DeepEqual(s, v) {
		t.Fatalf("expected node replaced by %#v; got %#v", v, s)
	}
	s.SetInnermost(v)
	if !reflect.DeepEqual(s, v) {
		t.Fatalf("expected second set to be idempotent; got %#v", s)
	}
}

func TestWithInnermost_LeavesOriginalUntouched(t *testing.T) {
	t.Parallel()

	s := chain(3)
	orig := s.Clone()
	_ = s.WithInnermost(BrowserState{Contents: []int{9}})
	if !reflect.DeepEqual(s, orig) {
		t.Fatalf("expected WithInnermost to leave receiver unchanged")
	}
}

func TestSetInnermost_PushChildExtendsChain(t *testing.T) {
	t.Parallel()

	s := BrowserState{Contents: []int{0}}
	in := s.Innermost()
	in.Destination = BrowserChild{State: BrowserState{Contents: []int{0, 1}}}
	s.SetInnermost(in)

	if s.Depth() != 2 {
		t.Fatalf("expected depth 2; got %d", s.Depth())
	}
	if diff := cmp.Diff([]int{0}, s.Contents); diff != "" {
		t.Fatalf("parent contents changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1}, s.Innermost().Contents); diff != "" {
		t.Fatalf("child contents (-want +got):\n%s", diff)
	}
}

func TestPop(t *testing.T) {
	t.Parallel()

	s := chain(3)
	popped, ok := s.Pop()
	if !ok {
		t.Fatalf("expected pop to succeed")
	}
	if popped.Depth() != 2 {
		t.Fatalf("expected depth 2 after pop; got %d", popped.Depth())
	}
	if popped.Innermost().Destination != nil {
		t.Fatalf("expected new innermost without destination; got %#v", popped.Innermost().Destination)
	}

	single := BrowserState{Contents: []int{0}}
	if _, ok := single.Pop(); ok {
		t.Fatalf("expected pop on depth-1 state to report false")
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	s := chain(3)
	for i := 0; i < 3; i++ {
		l, ok := s.Level(i)
		if !ok || len(l.Contents) != i+1 {
			t.Fatalf("level %d: ok=%v contents=%v", i, ok, l.Contents)
		}
	}
	if _, ok := s.Level(3); ok {
		t.Fatalf("expected level 3 to be missing")
	}
	if _, ok := s.Level(-1); ok {
		t.Fatalf("expected negative level to be missing")
	}
}

func TestClone_SharesNoContents(t *testing.T) {
	t.Parallel()

	s := chain(2)
	c := s.Clone()
	c.Contents[0] = 99
	c.Innermost().Contents[1] = 99

	if s.Contents[0] != 0 || s.Innermost().Contents[1] != 1 {
		t.Fatalf("expected original chain unchanged; got %v / %v", s.Contents, s.Innermost().Contents)
	}
}

func TestInnermostBinding(t *testing.T) {
	t.Parallel()

	s := chain(3)
	b := InnermostBinding(Ref(&s))

	b.Update(func(in *BrowserState) { in.Destination = BrowserLoading{} })

	if _, ok := s.Innermost().Destination.(BrowserLoading); !ok {
		t.Fatalf("expected innermost loading; got %#v", s.Innermost().Destination)
	}
	if s.Depth() != 3 {
		t.Fatalf("expected depth 3; got %d", s.Depth())
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	s := BrowserState{Contents: []int{0, 1, 2}}
	if got := s.Title(); got != "Sum: 3" {
		t.Fatalf("expected title %q; got %q", "Sum: 3", got)
	}
}
