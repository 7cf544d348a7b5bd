package nav

import "fmt"

// DeepLink is an externally supplied jump target.
type DeepLink interface {
	isDeepLink()
}

// MusicLink selects the music tab and replaces its destination. A
// MusicBrowser destination may carry a chain of any depth.
type MusicLink struct {
	Destination MusicDestination
}

type SoundLink struct{}

type SettingsLink struct{}

func (MusicLink) isDeepLink()    {}
func (SoundLink) isDeepLink()    {}
func (SettingsLink) isDeepLink() {}

// Apply performs the single state transition for link. Tabs other than the
// target keep their state.
func (s *RootState) Apply(link DeepLink) {
	switch l := link.(type) {
	case MusicLink:
		s.SelectedTab = TabMusic
		s.Music.Destination = cloneMusicDestination(l.Destination)
	case SoundLink:
		s.SelectedTab = TabSound
	case SettingsLink:
		s.SelectedTab = TabSettings
	default:
		panic(fmt.Sprintf("nav: unknown deep link %T", link))
	}
}
