package listing

import (
	"slices"

	"github.com/mmcdole/jobboard/internal/domain"
)

// Phase is the load lifecycle of a collection
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// String returns a human-readable representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// State is an immutable snapshot of a controller's collection.
// Slices are copies; holders may keep them across later transitions.
type State[T domain.ListItem] struct {
	All     []T   // Last successful fetch plus created items
	Visible []T   // All, narrowed by the active filter
	Phase   Phase // Load lifecycle
	Err     error // Set only when Phase == PhaseFailed

	Submitting bool   // At least one create request is in flight
	CreateErr  error  // Last create failure, until dismissed or a create succeeds
	Query      string // Text of the active filter
}

// ErrorMessage returns the load failure text, or "" outside PhaseFailed
func (s State[T]) ErrorMessage() string {
	if s.Phase != PhaseFailed {
		return ""
	}
	return domain.ErrorMessage(s.Err)
}

// CreateErrorMessage returns the transient create failure text
func (s State[T]) CreateErrorMessage() string {
	return domain.ErrorMessage(s.CreateErr)
}

func (s State[T]) clone() State[T] {
	s.All = slices.Clone(s.All)
	s.Visible = slices.Clone(s.Visible)
	return s
}
