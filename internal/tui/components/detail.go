package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/tui/styles"
)

// Detail displays every field of one job or specialist
type Detail struct {
	item    domain.ListItem
	loading bool
	errMsg  string
	width   int
	height  int
}

// NewDetail creates an empty detail pane
func NewDetail() Detail {
	return Detail{}
}

// Show displays item immediately and marks a fresher copy as loading
func (d *Detail) Show(item domain.ListItem) {
	d.item = item
	d.loading = true
	d.errMsg = ""
}

// SetItem replaces the displayed item with the fetched copy
func (d *Detail) SetItem(item domain.ListItem) {
	d.item = item
	d.loading = false
}

// SetError keeps the current item and reports why it could not be refreshed
func (d *Detail) SetError(msg string) {
	d.loading = false
	d.errMsg = msg
}

// Hide clears the pane
func (d *Detail) Hide() {
	d.item = nil
	d.loading = false
	d.errMsg = ""
}

// IsVisible returns whether an item is shown
func (d Detail) IsVisible() bool {
	return d.item != nil
}

// ItemID returns the identifier of the displayed item
func (d Detail) ItemID() domain.ID {
	if d.item == nil {
		return ""
	}
	return d.item.GetID()
}

// SetSize updates the component dimensions
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the pane; spinner is shown while a refresh is in flight
func (d Detail) View(st *styles.Styles, spinner string) string {
	if d.item == nil {
		return ""
	}

	width := max(d.width-4, 20)
	wrap := lipgloss.NewStyle().Width(width)

	header := st.Title.Render(d.item.GetTitle())
	if sp, ok := d.item.(*domain.Specialist); ok {
		header = st.Badge.Render(sp.Initial()) + " " + header
	}
	if d.loading {
		header += " " + spinner
	}

	lines := []string{header, st.Subtitle.Render(d.item.GetSubtitle()), ""}

	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, st.Label.Render(label)+value)
		}
	}
	switch item := d.item.(type) {
	case *domain.Job:
		add("Type", item.TypeLabel())
		add("Company", item.Company)
		add("Location", item.Location)
	case *domain.Specialist:
		add("Profession", item.Profession)
		add("Email", item.Email)
		add("Phone", item.Phone)
		add("Username", item.Username)
		add("Address", item.Address)
	}

	if tags := d.item.GetTags(); len(tags) > 0 {
		badges := make([]string, len(tags))
		for i, tag := range tags {
			badges[i] = st.Badge.Render(tag)
		}
		lines = append(lines, "", wrap.Render(lipgloss.JoinHorizontal(lipgloss.Top, badges...)))
	}

	if desc := d.item.GetDescription(); desc != "" {
		lines = append(lines, "", wrap.Render(desc))
	}

	if d.errMsg != "" {
		lines = append(lines, "", st.Error.Render(d.errMsg))
	}
	lines = append(lines, "", st.Dim.Render("esc back"))

	body := strings.Join(lines, "\n")
	return st.Panel.Width(max(d.width-2, 20)).Render(body)
}
