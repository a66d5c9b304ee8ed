package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/listing"
)

// Command factories for async operations

const statusTimeout = 4 * time.Second

// WaitForStateCmd waits for the next listing notification
func WaitForStateCmd(ch <-chan stateChangedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// AwaitCreateCmd waits for a create result and reports it
func AwaitCreateCmd[T domain.ListItem](tab Tab, title string, result <-chan listing.CreateResult[T]) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-result
		if !ok {
			return CreateDoneMsg{Tab: tab, Title: title, Err: listing.ErrClosed}
		}
		if res.Err == nil {
			title = res.Item.GetTitle()
		}
		return CreateDoneMsg{Tab: tab, Title: title, Err: res.Err}
	}
}

// LoadDetailCmd fetches one item for the detail pane
func LoadDetailCmd(ctx context.Context, v collectionView, id domain.ID) tea.Cmd {
	tab := v.Tab()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		item, err := v.Get(ctx, id)
		return DetailLoadedMsg{Tab: tab, ID: id, Item: item, Err: err}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
