package store

import "errors"

var (
	// ErrBusy means the screen is loading or covered, so the action is refused.
	ErrBusy = errors.New("screen is busy")
	// ErrNoBrowser means the music tab is not showing the browser.
	ErrNoBrowser = errors.New("browser is not shown")
	// ErrUnknownItem means the tapped item is not among the shown contents.
	ErrUnknownItem = errors.New("item is not shown")
	// ErrStaleRequest means a browse result arrived for state that no longer
	// exists; the result is discarded.
	ErrStaleRequest = errors.New("browse result is stale")

	ErrNothingToDismiss = errors.New("nothing to dismiss")
	ErrNothingToPop     = errors.New("nothing to go back from")
)
