package nav

// AlertState describes a one-button alert. Title is the user-facing headline.
type AlertState struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func NewAlert(title string) AlertState {
	return AlertState{Title: title}
}

func (a AlertState) String() string {
	if a.Message == "" {
		return a.Title
	}
	return a.Title + ": " + a.Message
}
