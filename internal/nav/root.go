package nav

import (
	"fmt"
	"strings"
)

type Tab int

const (
	TabMusic Tab = iota
	TabSound
	TabSettings
)

func Tabs() []Tab { return []Tab{TabMusic, TabSound, TabSettings} }

func (t Tab) String() string {
	switch t {
	case TabMusic:
		return "music"
	case TabSound:
		return "sound"
	case TabSettings:
		return "settings"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tab: %q", s)
}

type SoundState struct{}

type SettingsState struct{}

// MonitoringSlot names one of the root-level monitoring alerts. The slots are
// independent of each other and of navigation; several may be up at once.
type MonitoringSlot int

const (
	MonitoringA MonitoringSlot = iota
	MonitoringB
	MonitoringC
)

func MonitoringSlots() []MonitoringSlot {
	return []MonitoringSlot{MonitoringA, MonitoringB, MonitoringC}
}

func (s MonitoringSlot) String() string {
	switch s {
	case MonitoringA:
		return "a"
	case MonitoringB:
		return "b"
	case MonitoringC:
		return "c"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// RootState is the whole application state. Every tab keeps its state while
// another tab is selected.
type RootState struct {
	SelectedTab Tab
	Music       MusicState
	Sound       SoundState
	Settings    SettingsState

	MonitoringA Option[AlertState]
	MonitoringB Option[AlertState]
	MonitoringC Option[AlertState]
}

// Monitoring returns the field backing slot. Unknown slots panic.
func (s *RootState) Monitoring(slot MonitoringSlot) *Option[AlertState] {
	switch slot {
	case MonitoringA:
		return &s.MonitoringA
	case MonitoringB:
		return &s.MonitoringB
	case MonitoringC:
		return &s.MonitoringC
	default:
		panic(fmt.Sprintf("nav: unknown monitoring slot %d", int(slot)))
	}
}

func (s RootState) Clone() RootState {
	out := s
	out.Music = s.Music.Clone()
	return out
}

func (s RootState) Equal(o RootState) bool {
	return s.SelectedTab == o.SelectedTab &&
		s.Music.Equal(o.Music) &&
		s.Sound == o.Sound &&
		s.Settings == o.Settings &&
		s.MonitoringA == o.MonitoringA &&
		s.MonitoringB == o.MonitoringB &&
		s.MonitoringC == o.MonitoringC
}
