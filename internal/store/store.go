// Package store owns the application's single RootState.
//
// Every mutation is a transition: it runs against a private copy of the state
// and is committed with one assignment, so readers never see a half-applied
// change. Subscribers are told about each committed transition after the lock
// is released.
package store

import (
	"log/slog"
	"slices"
	"sync"

	"navdemo/internal/nav"

	"go.uber.org/atomic"
)

type subscriber struct {
	id int
	fn func(nav.RootState)
}

type Store struct {
	mu      sync.Mutex
	state   nav.RootState
	pending map[string]BrowseRequest
	subs    []subscriber
	nextSub int

	revision atomic.Uint64

	log *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithState seeds the store; the value is copied.
func WithState(st nav.RootState) Option {
	return func(s *Store) { s.state = st.Clone() }
}

func New(opts ...Option) *Store {
	s := &Store{
		pending: map[string]BrowseRequest{},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() nav.RootState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Revision counts committed transitions.
func (s *Store) Revision() uint64 { return s.revision.Load() }

// Subscribe registers fn for every committed transition. The returned func
// unregisters it.
func (s *Store) Subscribe(fn func(nav.RootState)) (cancel func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
			s.mu.Unlock()
		})
	}
}

// Update applies fn as one transition.
func (s *Store) Update(fn func(*nav.RootState)) {
	s.transition("update", func(st *nav.RootState) bool {
		fn(st)
		return true
	})
}

// Deeplink dispatches link. Any browse request still in flight is superseded
// and its result will be discarded.
func (s *Store) Deeplink(link nav.DeepLink) {
	s.transition("deeplink", func(st *nav.RootState) bool {
		st.Apply(link)
		if n := len(s.pending); n > 0 {
			s.log.Info("deeplink superseded in-flight requests", "count", n)
			clear(s.pending)
		}
		return true
	})
}

// transition runs fn under the lock against a copy of the state. fn returns
// false to abandon the transition; nothing is committed or published then.
func (s *Store) transition(reason string, fn func(*nav.RootState) bool) bool {
	s.mu.Lock()
	next := s.state.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return false
	}
	s.dropSettled(&next)
	s.state = next
	rev := s.revision.Inc()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	s.log.Debug("transition", "reason", reason, "revision", rev, "tab", next.SelectedTab.String())
	for _, sub := range subs {
		sub.fn(next.Clone())
	}
	return true
}

func (s *Store) rootBinding() nav.Binding[nav.RootState] {
	return nav.NewBinding(s.State, func(st nav.RootState) {
		s.transition("binding", func(cur *nav.RootState) bool {
			*cur = st.Clone()
			return true
		})
	})
}

// The bindings below read and write through the store one call at a time.
// Compound read-modify-write sequences belong in Update.

func (s *Store) SelectedTabBinding() nav.Binding[nav.Tab] {
	return nav.Field(s.rootBinding(),
		func(st nav.RootState) nav.Tab { return st.SelectedTab },
		func(st *nav.RootState, t nav.Tab) { st.SelectedTab = t },
	)
}

func (s *Store) MusicDestinationBinding() nav.Binding[nav.MusicDestination] {
	music := nav.Field(s.rootBinding(),
		func(st nav.RootState) nav.MusicState { return st.Music },
		func(st *nav.RootState, m nav.MusicState) { st.Music = m },
	)
	return nav.MusicDestinationBinding(music)
}

// BrowserBinding projects the music tab's destination onto the browser case.
func (s *Store) BrowserBinding() nav.Binding[nav.Option[nav.BrowserState]] {
	return nav.Project(s.MusicDestinationBinding(), nav.MusicBrowserCase)
}

func (s *Store) MonitoringBinding(slot nav.MonitoringSlot) nav.Binding[nav.Option[nav.AlertState]] {
	return nav.Field(s.rootBinding(),
		func(st nav.RootState) nav.Option[nav.AlertState] { return *st.Monitoring(slot) },
		func(st *nav.RootState, a nav.Option[nav.AlertState]) { *st.Monitoring(slot) = a },
	)
}

func (s *Store) SelectTab(t nav.Tab) {
	s.transition("tab", func(st *nav.RootState) bool {
		if st.SelectedTab == t {
			return false
		}
		st.SelectedTab = t
		return true
	})
}

func (s *Store) RaiseMonitoringAlert(slot nav.MonitoringSlot, a nav.AlertState) {
	s.transition("monitoring.raise", func(st *nav.RootState) bool {
		*st.Monitoring(slot) = nav.Some(a)
		return true
	})
}

func (s *Store) DismissMonitoringAlert(slot nav.MonitoringSlot) error {
	ok := s.transition("monitoring.dismiss", func(st *nav.RootState) bool {
		if !st.Monitoring(slot).Valid {
			return false
		}
		*st.Monitoring(slot) = nav.None[nav.AlertState]()
		return true
	})
	if !ok {
		return ErrNothingToDismiss
	}
	return nil
}
