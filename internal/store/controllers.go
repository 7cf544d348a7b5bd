package store

import (
	"context"
	"slices"

	"navdemo/internal/browse"
	"navdemo/internal/nav"

	"github.com/google/uuid"
)

const (
	MusicRequestErrorTitle   = "Container Request Error"
	BrowserRequestErrorTitle = "Request Error"
)

type Scope int

const (
	ScopeMusic Scope = iota
	ScopeBrowser
)

func (s Scope) String() string {
	if s == ScopeBrowser {
		return "browser"
	}
	return "music"
}

// BrowseRequest identifies one in-flight browse. Level is the index of the
// browser level that shows the spinner (ScopeBrowser only).
type BrowseRequest struct {
	ID    string
	Scope Scope
	Level int
	Item  int
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Pending reports how many browse requests are in flight.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func musicDestination(st *nav.RootState) nav.Binding[nav.MusicDestination] {
	return nav.Ref(&st.Music.Destination)
}

// innermostDestination binds the destination of the deepest browser level,
// resolved from the root every time it is read or written.
func innermostDestination(st *nav.RootState) (nav.Binding[nav.BrowserDestination], nav.Binding[nav.BrowserState], bool) {
	chain, ok := nav.Unwrap(nav.Project(musicDestination(st), nav.MusicBrowserCase))
	if !ok {
		return nav.Binding[nav.BrowserDestination]{}, nav.Binding[nav.BrowserState]{}, false
	}
	return nav.BrowserDestinationBinding(nav.InnermostBinding(chain)), chain, true
}

// BeginMusicBrowse starts loading the container behind item on the music
// root screen.
func (s *Store) BeginMusicBrowse(item int) (BrowseRequest, error) {
	var (
		req BrowseRequest
		err error
	)
	s.transition("music.browse.begin", func(st *nav.RootState) bool {
		dest := musicDestination(st)
		if dest.Get() != nil {
			err = ErrBusy
			return false
		}
		nav.IsPresent(dest, nav.MusicLoadingCase).Set(true)
		req = BrowseRequest{ID: newRequestID(), Scope: ScopeMusic, Item: item}
		s.pending[req.ID] = req
		return true
	})
	if err == nil {
		s.log.Debug("browse begin", "id", req.ID, "scope", req.Scope.String(), "item", item)
	}
	return req, err
}

// BeginBrowserBrowse starts loading item on the innermost browser level.
func (s *Store) BeginBrowserBrowse(item int) (BrowseRequest, error) {
	var (
		req BrowseRequest
		err error
	)
	s.transition("browser.browse.begin", func(st *nav.RootState) bool {
		dest, chain, ok := innermostDestination(st)
		if !ok {
			err = ErrNoBrowser
			return false
		}
		if dest.Get() != nil {
			err = ErrBusy
			return false
		}
		c := chain.Get()
		if !slices.Contains(c.Innermost().Contents, item) {
			err = ErrUnknownItem
			return false
		}
		nav.IsPresent(dest, nav.BrowserLoadingCase).Set(true)
		req = BrowseRequest{ID: newRequestID(), Scope: ScopeBrowser, Level: c.Depth() - 1, Item: item}
		s.pending[req.ID] = req
		return true
	})
	if err == nil {
		s.log.Debug("browse begin", "id", req.ID, "scope", req.Scope.String(), "level", req.Level, "item", item)
	}
	return req, err
}

// CompleteBrowse applies the outcome of req. The target is resolved from the
// root now, not when the request began: if the request was superseded or its
// level is no longer loading, the outcome is dropped with ErrStaleRequest.
func (s *Store) CompleteBrowse(req BrowseRequest, contents []int, browseErr error) error {
	stale := false
	s.transition("browse.complete", func(st *nav.RootState) bool {
		if _, ok := s.pending[req.ID]; !ok {
			stale = true
			return false
		}
		delete(s.pending, req.ID)

		if !targetLoading(st, req) {
			stale = true
			return false
		}
		switch req.Scope {
		case ScopeMusic:
			dest := musicDestination(st)
			if browseErr != nil {
				nav.Project(dest, nav.MusicAlertCase).Set(nav.Some(nav.NewAlert(MusicRequestErrorTitle)))
			} else {
				nav.Project(dest, nav.MusicBrowserCase).Set(nav.Some(nav.NewBrowserState(contents)))
			}
		case ScopeBrowser:
			dest, _, _ := innermostDestination(st)
			if browseErr != nil {
				nav.Project(dest, nav.BrowserAlertCase).Set(nav.Some(nav.NewAlert(BrowserRequestErrorTitle)))
			} else {
				nav.Project(dest, nav.BrowserChildCase).Set(nav.Some(nav.NewBrowserState(contents)))
			}
		default:
			stale = true
			return false
		}
		return true
	})
	if stale {
		s.log.Info("dropped stale browse result", "id", req.ID, "scope", req.Scope.String())
		return ErrStaleRequest
	}
	if browseErr != nil {
		s.log.Warn("browse failed", "id", req.ID, "scope", req.Scope.String(), "item", req.Item, "err", browseErr)
	}
	return nil
}

// targetLoading reports whether the level req was started on still shows its
// loading overlay.
func targetLoading(st *nav.RootState, req BrowseRequest) bool {
	switch req.Scope {
	case ScopeMusic:
		return nav.IsPresent(musicDestination(st), nav.MusicLoadingCase).Get()
	case ScopeBrowser:
		dest, chain, ok := innermostDestination(st)
		return ok && chain.Get().Depth()-1 == req.Level && nav.IsPresent(dest, nav.BrowserLoadingCase).Get()
	default:
		return false
	}
}

// dropSettled forgets requests whose level stopped loading in st. Their
// results are stale even if the same level starts loading again later.
// Called with s.mu held.
func (s *Store) dropSettled(st *nav.RootState) {
	for id, req := range s.pending {
		if !targetLoading(st, req) {
			delete(s.pending, id)
			s.log.Debug("browse request superseded", "id", id, "scope", req.Scope.String())
		}
	}
}

// RunBrowse performs req against client and applies the outcome. A failed
// call is not an error here; it shows up as an alert in the state.
func (s *Store) RunBrowse(ctx context.Context, client browse.Client, req BrowseRequest) error {
	contents, err := client.Browse(ctx, req.Item)
	return s.CompleteBrowse(req, contents, err)
}

// DismissAlert acknowledges the visible request alert: the music one, or
// the one on the innermost browser level. Contents are left alone.
func (s *Store) DismissAlert() error {
	ok := s.transition("alert.dismiss", func(st *nav.RootState) bool {
		music := nav.Project(musicDestination(st), nav.MusicAlertCase)
		if music.Get().Valid {
			music.Set(nav.None[nav.AlertState]())
			return true
		}
		dest, _, ok := innermostDestination(st)
		if !ok {
			return false
		}
		alert := nav.Project(dest, nav.BrowserAlertCase)
		if !alert.Get().Valid {
			return false
		}
		alert.Set(nav.None[nav.AlertState]())
		return true
	})
	if !ok {
		return ErrNothingToDismiss
	}
	return nil
}

// Pop leaves the innermost browser level. From the first level it returns to
// the music root screen. Refused while that level is loading or alerting.
func (s *Store) Pop() error {
	var err error
	s.transition("browser.pop", func(st *nav.RootState) bool {
		dest, chain, ok := innermostDestination(st)
		if !ok {
			err = ErrNothingToPop
			return false
		}
		if dest.Get() != nil {
			err = ErrBusy
			return false
		}
		if popped, ok := chain.Get().Pop(); ok {
			chain.Set(popped)
			return true
		}
		nav.Project(musicDestination(st), nav.MusicBrowserCase).Set(nav.None[nav.BrowserState]())
		return true
	})
	return err
}

func (s *Store) ShowInformation() error {
	var err error
	s.transition("information.show", func(st *nav.RootState) bool {
		dest := musicDestination(st)
		if dest.Get() != nil {
			err = ErrBusy
			return false
		}
		nav.IsPresent(dest, nav.MusicInformationCase).Set(true)
		return true
	})
	return err
}

func (s *Store) DismissInformation() error {
	ok := s.transition("information.dismiss", func(st *nav.RootState) bool {
		sheet := nav.IsPresent(musicDestination(st), nav.MusicInformationCase)
		if !sheet.Get() {
			return false
		}
		sheet.Set(false)
		return true
	})
	if !ok {
		return ErrNothingToDismiss
	}
	return nil
}
