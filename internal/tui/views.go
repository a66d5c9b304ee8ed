package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/jobboard/internal/listing"
)

const maxSuggestions = 3

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	var content string
	switch {
	case m.Form.IsVisible():
		status := m.Spinner.View() + " Submitting..."
		content = lipgloss.Place(m.Width, m.contentHeight(),
			lipgloss.Center, lipgloss.Center,
			m.Form.View(m.Styles, status))
	case m.Detail.IsVisible():
		content = m.Detail.View(m.Styles, m.Spinner.View())
	default:
		content = m.renderList()
	}
	content = lipgloss.NewStyle().
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		PaddingLeft(contentMargin / 2).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterLine(),
		content,
		m.renderFooter(),
		m.Help.View(Keys),
	)
}

// renderHeader renders the view tabs on the left and the theme on the right
func (m Model) renderHeader() string {
	var tabs []string
	for _, t := range []Tab{TabJobs, TabSpecialists} {
		if t == m.Tab {
			tabs = append(tabs, m.Styles.ActiveTab.Render(t.String()))
		} else {
			tabs = append(tabs, m.Styles.InactiveTab.Render(t.String()))
		}
	}
	left := strings.Join(tabs, " ")
	right := m.Styles.Dim.Render(m.Theme + " theme")

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderFilterLine() string {
	if m.Filtering {
		return m.FilterInput.View()
	}
	if q := m.FilterInput.Value(); q != "" {
		return m.Styles.FilterPrompt.Render("/ ") + q + m.Styles.Dim.Render("  (esc to clear)")
	}
	return ""
}

func (m Model) renderList() string {
	noun := strings.ToLower(m.Tab.String())
	switch m.state.Phase {
	case listing.PhaseIdle:
		return ""
	case listing.PhaseLoading:
		if len(m.state.All) == 0 {
			return m.Spinner.View() + m.Styles.Dim.Render(" Loading "+noun+"...")
		}
	case listing.PhaseFailed:
		if len(m.state.All) == 0 {
			return m.Styles.Error.Render(m.state.ErrMsg) + "\n" +
				m.Styles.Dim.Render("Press r to retry")
		}
	}

	if m.List.Len() > 0 {
		return m.List.View(m.Styles)
	}

	if m.state.Query == "" {
		return m.Styles.Dim.Render(fmt.Sprintf("No %s yet. Press n to add one.", noun))
	}

	lines := []string{m.Styles.Dim.Render(fmt.Sprintf("No %s match %q", noun, m.state.Query))}
	if titles := listing.Suggest(m.state.Query, m.state.All, maxSuggestions); len(titles) > 0 {
		lines = append(lines, "", m.Styles.Subtitle.Render("Did you mean:"))
		for _, title := range titles {
			lines = append(lines, "  "+m.Styles.Accent.Render(title))
		}
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders the status line: phase on the left, counts on the right
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.state.Phase == listing.PhaseLoading:
		left = m.Spinner.View() + " " + m.Styles.Dim.Render("Loading...")
	case m.state.Phase == listing.PhaseFailed:
		left = m.Styles.Error.Render(m.state.ErrMsg) + m.Styles.Dim.Render(" · r to retry")
	case m.state.CreateErr != "" && !m.Form.IsVisible():
		left = m.Styles.Error.Render("Create failed: "+m.state.CreateErr) + m.Styles.Dim.Render(" · x to dismiss")
	case m.state.Submitting:
		left = m.Spinner.View() + " " + m.Styles.Dim.Render("Submitting...")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = m.Styles.Error.Render(m.StatusMsg)
		} else {
			left = m.Styles.Success.Render(m.StatusMsg)
		}
	}

	var right string
	if m.state.Phase != listing.PhaseIdle {
		right = m.Styles.Dim.Render(fmt.Sprintf("%d/%d", len(m.state.Visible), len(m.state.All)))
	}

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
