package tui

// ChannelObserver turns listing notifications into a coalesced signal for Bubble Tea.
type ChannelObserver struct {
	ch chan<- stateChangedMsg
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- stateChangedMsg) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Notify signals the channel (non-blocking if a signal is already pending).
func (o *ChannelObserver) Notify() {
	select {
	case o.ch <- stateChangedMsg{}:
	default: // A pending signal already covers this change
	}
}
