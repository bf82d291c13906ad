package notify

// Mode selects the notification verbosity of a single run.
type Mode int

const (
	// ModeCheck notifies only when no activity was observed.
	ModeCheck Mode = iota

	// ModeDebug always notifies with a diagnostic verdict.
	ModeDebug
)

// String returns string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeDebug:
		return "debug"
	default:
		return "<none>"
	}
}
