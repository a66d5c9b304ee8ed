package tui

import "github.com/mmcdole/jobboard/internal/domain"

// Message types for the TUI

// stateChangedMsg signals that the mounted listing published a new snapshot.
// It carries no payload; the model reads the current snapshot.
type stateChangedMsg struct{}

// CreateDoneMsg reports the outcome of a create submitted from the form
type CreateDoneMsg struct {
	Tab   Tab
	Title string
	Err   error
}

// DetailLoadedMsg carries a freshly fetched item for the detail pane
type DetailLoadedMsg struct {
	Tab  Tab
	ID   domain.ID
	Item domain.ListItem
	Err  error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message if it is still the one identified by Seq
type ClearStatusMsg struct {
	Seq int
}
