package nav

// MusicDestination is what the music tab shows on top of its root screen.
// At most one is active; nil means the root screen itself.
type MusicDestination interface {
	isMusicDestination()
}

type MusicLoading struct{}

// MusicInformation is the information sheet.
type MusicInformation struct{}

// MusicBrowser pushes the browser chain.
type MusicBrowser struct {
	State BrowserState
}

type MusicRequestAlert struct {
	Alert AlertState
}

func (MusicLoading) isMusicDestination()      {}
func (MusicInformation) isMusicDestination()  {}
func (MusicBrowser) isMusicDestination()      {}
func (MusicRequestAlert) isMusicDestination() {}

var (
	MusicLoadingCase     = CaseOf[MusicDestination, MusicLoading]("loading")
	MusicInformationCase = CaseOf[MusicDestination, MusicInformation]("information")
	MusicBrowserCase     = NewCase("browser",
		func(s BrowserState) MusicDestination { return MusicBrowser{State: s} },
		func(d MusicDestination) (BrowserState, bool) {
			v, ok := d.(MusicBrowser)
			return v.State, ok
		},
	)
	MusicAlertCase = NewCase("requestAlert",
		func(a AlertState) MusicDestination { return MusicRequestAlert{Alert: a} },
		func(d MusicDestination) (AlertState, bool) {
			v, ok := d.(MusicRequestAlert)
			return v.Alert, ok
		},
	)
)

type MusicState struct {
	Destination MusicDestination
}

func (s MusicState) Clone() MusicState {
	return MusicState{Destination: cloneMusicDestination(s.Destination)}
}

func cloneMusicDestination(d MusicDestination) MusicDestination {
	if b, ok := d.(MusicBrowser); ok {
		return MusicBrowser{State: b.State.Clone()}
	}
	return d
}

func (s MusicState) Equal(o MusicState) bool {
	return musicDestinationEqual(s.Destination, o.Destination)
}

func musicDestinationEqual(a, b MusicDestination) bool {
	ab, aok := a.(MusicBrowser)
	bb, bok := b.(MusicBrowser)
	if aok || bok {
		return aok && bok && ab.State.Equal(bb.State)
	}
	return a == b
}

// MusicDestinationBinding binds the destination field of the music state.
func MusicDestinationBinding(b Binding[MusicState]) Binding[MusicDestination] {
	return Field(b,
		func(s MusicState) MusicDestination { return s.Destination },
		func(s *MusicState, d MusicDestination) { s.Destination = d },
	)
}
