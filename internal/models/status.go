package models

// LoadStatus tracks the catalog load lifecycle:
// NotStarted -> Loading -> {Loaded, Failed}.
type LoadStatus int

const (
	StatusNotStarted LoadStatus = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s LoadStatus) IsTerminal() bool {
	return s == StatusLoaded || s == StatusFailed
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s LoadStatus) CanTransition(next LoadStatus) bool {
	switch s {
	case StatusNotStarted:
		return next == StatusLoading
	case StatusLoading:
		return next == StatusLoaded || next == StatusFailed
	default:
		return false
	}
}
