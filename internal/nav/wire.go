package nav

import "strconv"

// Wire forms are the printable shape of the state tree, used by the CLI's
// json/yaml output. Sum types become a "kind" discriminator.

type WireRoot struct {
	SelectedTab string                `json:"selectedTab" yaml:"selectedTab"`
	Music       WireMusic             `json:"music" yaml:"music"`
	Monitoring  map[string]AlertState `json:"monitoring,omitempty" yaml:"monitoring,omitempty"`
}

type WireMusic struct {
	Destination *WireDestination `json:"destination,omitempty" yaml:"destination,omitempty"`
}

type WireDestination struct {
	Kind    string       `json:"kind" yaml:"kind"`
	Alert   *AlertState  `json:"alert,omitempty" yaml:"alert,omitempty"`
	Browser *WireBrowser `json:"browser,omitempty" yaml:"browser,omitempty"`
}

type WireBrowser struct {
	Title       string           `json:"title" yaml:"title"`
	Contents    []int            `json:"contents" yaml:"contents,flow"`
	Destination *WireDestination `json:"destination,omitempty" yaml:"destination,omitempty"`
}

func ToWire(s RootState) WireRoot {
	out := WireRoot{
		SelectedTab: s.SelectedTab.String(),
		Music:       WireMusic{Destination: wireMusicDestination(s.Music.Destination)},
	}
	for _, slot := range MonitoringSlots() {
		if a, ok := s.Monitoring(slot).Get(); ok {
			if out.Monitoring == nil {
				out.Monitoring = map[string]AlertState{}
			}
			out.Monitoring[slot.String()] = a
		}
	}
	return out
}

func wireMusicDestination(d MusicDestination) *WireDestination {
	switch d := d.(type) {
	case nil:
		return nil
	case MusicLoading:
		return &WireDestination{Kind: MusicLoadingCase.Name()}
	case MusicInformation:
		return &WireDestination{Kind: MusicInformationCase.Name()}
	case MusicRequestAlert:
		a := d.Alert
		return &WireDestination{Kind: MusicAlertCase.Name(), Alert: &a}
	case MusicBrowser:
		return &WireDestination{Kind: MusicBrowserCase.Name(), Browser: wireBrowser(d.State)}
	default:
		return &WireDestination{Kind: "unknown"}
	}
}

func wireBrowser(s BrowserState) *WireBrowser {
	out := &WireBrowser{
		Title:    browserTitle(s),
		Contents: s.Contents,
	}
	if out.Contents == nil {
		out.Contents = []int{}
	}
	switch d := s.Destination.(type) {
	case nil:
	case BrowserLoading:
		out.Destination = &WireDestination{Kind: BrowserLoadingCase.Name()}
	case BrowserRequestAlert:
		a := d.Alert
		out.Destination = &WireDestination{Kind: BrowserAlertCase.Name(), Alert: &a}
	case BrowserChild:
		out.Destination = &WireDestination{Kind: BrowserChildCase.Name(), Browser: wireBrowser(d.State)}
	}
	return out
}

func browserTitle(s BrowserState) string {
	return "Sum: " + strconv.Itoa(s.Sum())
}
