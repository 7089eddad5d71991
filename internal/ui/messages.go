package ui

// Tab represents the active list tab
type Tab int

const (
	TabPending Tab = iota
	TabDone
)

// String returns the display name for a tab
func (t Tab) String() string {
	switch t {
	case TabPending:
		return "Wishes"
	case TabDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Messages for inter-component communication

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// CategoriesLoadedMsg carries the server's category label set
type CategoriesLoadedMsg struct {
	Labels []string
	Err    error
}
