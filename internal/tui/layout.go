package tui

// Chrome rows: header, filter line, status line, short help
const ChromeHeight = 4

// Horizontal padding around the content area
const contentMargin = 2

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentWidth := max(m.Width-contentMargin, 20)
	m.List.SetSize(contentWidth, m.contentHeight())
	m.Detail.SetSize(contentWidth, m.contentHeight())
	m.FilterInput.Width = max(contentWidth-4, 10)
	m.Help.Width = m.Width
}

func (m Model) contentHeight() int {
	h := m.Height - ChromeHeight
	if m.Help.ShowAll {
		h -= len(Keys.FullHelp()[0]) - 1
	}
	return max(h, 1)
}
