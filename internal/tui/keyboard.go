package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/listing"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Route to the active input first
	switch {
	case m.Form.IsVisible():
		return m.handleFormKey(msg)
	case m.Filtering:
		return m.handleFilterKey(msg)
	case m.Detail.IsVisible():
		switch {
		case key.Matches(msg, Keys.Escape):
			m.Detail.Hide()
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		// Clear active filter if any
		if m.FilterInput.Value() != "" {
			m.FilterInput.Reset()
			m.applyFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.Filtering = true
		return m, m.FilterInput.Focus()

	case key.Matches(msg, Keys.Refresh):
		return m, m.loadCmd()

	case key.Matches(msg, Keys.New):
		m.Form.Show("New "+singular(m.Tab), m.view.Fields())
		return m, nil

	case key.Matches(msg, Keys.SwitchTab):
		return m, m.switchTab(m.Tab.Next())

	case key.Matches(msg, Keys.Theme):
		if m.Theme == "dark" {
			m.setTheme("light")
		} else {
			m.setTheme("dark")
		}
		return m, nil

	case key.Matches(msg, Keys.Dismiss):
		m.view.DismissError()
		m.refresh()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		item, ok := m.List.Selected()
		if !ok {
			return m, nil
		}
		m.Detail.Show(item)
		return m, LoadDetailCmd(m.ctx, m.view, item.GetID())
	}

	m.List.Update(msg)
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Filtering = false
		m.FilterInput.Reset()
		m.FilterInput.Blur()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.Filtering = false
		m.FilterInput.Blur()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		m.List.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	prev := m.FilterInput.Value()
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	if m.FilterInput.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.Form, cmd, submitted = m.Form.Update(msg)
	if !submitted {
		return m, cmd
	}

	createCmd, err := m.view.Create(m.ctx, m.Form.Values())
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			m.Form.SetError(verr.Message, verr.Fields)
		case errors.Is(err, listing.ErrClosed):
			m.Form.Hide()
		default:
			m.Form.SetError(domain.ErrorMessage(err), nil)
		}
		return m, nil
	}

	m.Form.SetSubmitting(true)
	return m, createCmd
}

func singular(t Tab) string {
	if t == TabSpecialists {
		return "specialist"
	}
	return "job"
}
