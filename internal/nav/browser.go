package nav

import "slices"

// BrowserDestination is what a browser screen shows on top of its contents.
// nil means the contents are shown directly.
type BrowserDestination interface {
	isBrowserDestination()
}

// BrowserLoading overlays a spinner while a browse request is in flight.
type BrowserLoading struct{}

// BrowserRequestAlert reports a failed browse request.
type BrowserRequestAlert struct {
	Alert AlertState
}

// BrowserChild pushes another browser screen. The child is owned by value.
type BrowserChild struct {
	State BrowserState
}

func (BrowserLoading) isBrowserDestination()      {}
func (BrowserRequestAlert) isBrowserDestination() {}
func (BrowserChild) isBrowserDestination()        {}

var (
	BrowserLoadingCase = CaseOf[BrowserDestination, BrowserLoading]("loading")
	BrowserAlertCase   = NewCase("requestAlert",
		func(a AlertState) BrowserDestination { return BrowserRequestAlert{Alert: a} },
		func(d BrowserDestination) (AlertState, bool) {
			v, ok := d.(BrowserRequestAlert)
			return v.Alert, ok
		},
	)
	BrowserChildCase = NewCase("child",
		func(s BrowserState) BrowserDestination { return BrowserChild{State: s} },
		func(d BrowserDestination) (BrowserState, bool) {
			v, ok := d.(BrowserChild)
			return v.State, ok
		},
	)
)

// BrowserState is one level of the drill-down browser. Levels form a chain
// through BrowserChild; the chain is a tree path, never a graph.
type BrowserState struct {
	Contents    []int
	Destination BrowserDestination
}

func NewBrowserState(contents []int) BrowserState {
	return BrowserState{Contents: slices.Clone(contents)}
}

// Innermost returns the deepest level: the first one whose destination is not
// a pushed child. A level without a child is its own innermost.
func (s BrowserState) Innermost() BrowserState {
	for {
		c, ok := s.Destination.(BrowserChild)
		if !ok {
			return s
		}
		s = c.State
	}
}

// WithInnermost returns a copy of the chain whose deepest level is replaced
// by v. Ancestors are re-threaded unchanged.
func (s BrowserState) WithInnermost(v BrowserState) BrowserState {
	return s.withLevel(s.Depth()-1, v)
}

// SetInnermost replaces the deepest level in place. The new chain is built
// first and stored with a single assignment.
func (s *BrowserState) SetInnermost(v BrowserState) {
	*s = s.WithInnermost(v)
}

// Depth counts the levels in the chain, starting at 1 for s itself.
func (s BrowserState) Depth() int {
	n := 1
	for {
		c, ok := s.Destination.(BrowserChild)
		if !ok {
			return n
		}
		s = c.State
		n++
	}
}

// Chain lists every level from s down to the innermost one.
func (s BrowserState) Chain() []BrowserState {
	out := []BrowserState{s}
	for {
		c, ok := s.Destination.(BrowserChild)
		if !ok {
			return out
		}
		s = c.State
		out = append(out, s)
	}
}

// Level returns the level at index i (0 is s itself).
func (s BrowserState) Level(i int) (BrowserState, bool) {
	if i < 0 {
		return BrowserState{}, false
	}
	for ; i > 0; i-- {
		c, ok := s.Destination.(BrowserChild)
		if !ok {
			return BrowserState{}, false
		}
		s = c.State
	}
	return s, true
}

// Pop drops the innermost pushed level. It reports false when s has no child.
func (s BrowserState) Pop() (BrowserState, bool) {
	depth := s.Depth()
	if depth < 2 {
		return s, false
	}
	parent, _ := s.Level(depth - 2)
	parent.Destination = nil
	return s.withLevel(depth-2, parent), true
}

func (s BrowserState) withLevel(i int, v BrowserState) BrowserState {
	chain := s.Chain()
	if i < 0 || i >= len(chain) {
		panic("nav: browser level out of range")
	}
	out := v
	for j := i - 1; j >= 0; j-- {
		parent := chain[j]
		parent.Destination = BrowserChild{State: out}
		out = parent
	}
	return out
}

// Sum adds up the contents; the browser screen uses it as its title.
func (s BrowserState) Sum() int {
	n := 0
	for _, c := range s.Contents {
		n += c
	}
	return n
}

// Clone deep-copies the whole chain so the copy shares no slices with s.
func (s BrowserState) Clone() BrowserState {
	out := BrowserState{Destination: cloneBrowserDestination(s.Destination)}
	if s.Contents != nil {
		out.Contents = slices.Clone(s.Contents)
	}
	return out
}

func cloneBrowserDestination(d BrowserDestination) BrowserDestination {
	switch d := d.(type) {
	case BrowserChild:
		return BrowserChild{State: d.State.Clone()}
	default:
		return d
	}
}

// Equal compares whole chains. nil and empty contents are equal.
func (s BrowserState) Equal(o BrowserState) bool {
	for {
		if !slices.Equal(s.Contents, o.Contents) {
			return false
		}
		sc, sChild := s.Destination.(BrowserChild)
		oc, oChild := o.Destination.(BrowserChild)
		if sChild != oChild {
			return false
		}
		if !sChild {
			return s.Destination == o.Destination
		}
		s, o = sc.State, oc.State
	}
}

// InnermostBinding exposes the deepest level of the bound chain. Writes go
// through WithInnermost, so the bound chain is replaced as one value.
func InnermostBinding(b Binding[BrowserState]) Binding[BrowserState] {
	return NewBinding(
		func() BrowserState { return b.Get().Innermost() },
		func(v BrowserState) { b.Set(b.Get().WithInnermost(v)) },
	)
}

// BrowserDestinationBinding binds the destination field of a browser level.
func BrowserDestinationBinding(b Binding[BrowserState]) Binding[BrowserDestination] {
	return Field(b,
		func(s BrowserState) BrowserDestination { return s.Destination },
		func(s *BrowserState, d BrowserDestination) { s.Destination = d },
	)
}

// Title is the screen title shown for this level.
func (s BrowserState) Title() string { return browserTitle(s) }
