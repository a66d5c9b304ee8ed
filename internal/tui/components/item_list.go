package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/tui/styles"
)

// rowHeight is the number of lines each item occupies
const rowHeight = 2

// ItemList is a scrollable list of collection items with a cursor.
// Titles are highlighted where they match the active filter query.
type ItemList struct {
	items      []domain.ListItem
	query      string
	cursor     int
	offset     int
	width      int
	height     int
	maxVisible int
	keys       ListKeyMap
}

// NewItemList creates an empty list
func NewItemList() ItemList {
	return ItemList{keys: DefaultListKeyMap()}
}

// SetItems replaces the rows. The cursor stays on the same item when it is still present.
func (l *ItemList) SetItems(items []domain.ListItem, query string) {
	var selectedID domain.ID
	if sel, ok := l.Selected(); ok {
		selectedID = sel.GetID()
	}

	l.items = items
	l.query = query

	l.cursor = 0
	if !selectedID.IsZero() {
		for i, item := range items {
			if item.GetID() == selectedID {
				l.cursor = i
				break
			}
		}
	}
	l.ensureVisible()
}

// SetSize updates the component dimensions
func (l *ItemList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = max(height/rowHeight, 1)
	l.ensureVisible()
}

// Len returns the number of rows
func (l ItemList) Len() int {
	return len(l.items)
}

// Selected returns the item under the cursor
func (l ItemList) Selected() (domain.ListItem, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return nil, false
	}
	return l.items[l.cursor], true
}

// Update moves the cursor; it reports whether the key was handled
func (l *ItemList) Update(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, l.keys.Up):
		l.moveCursor(-1)
	case key.Matches(msg, l.keys.Down):
		l.moveCursor(1)
	case key.Matches(msg, l.keys.Home):
		l.cursor = 0
	case key.Matches(msg, l.keys.End):
		l.cursor = len(l.items) - 1
	case key.Matches(msg, l.keys.PageUp):
		l.moveCursor(-l.maxVisible)
	case key.Matches(msg, l.keys.PageDown):
		l.moveCursor(l.maxVisible)
	default:
		return false
	}
	l.ensureVisible()
	return true
}

func (l *ItemList) moveCursor(delta int) {
	l.cursor = max(0, min(l.cursor+delta, len(l.items)-1))
}

func (l *ItemList) ensureVisible() {
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset > 0 && l.offset+l.maxVisible > len(l.items) {
		l.offset = max(0, len(l.items)-l.maxVisible)
	}
}

// View renders the visible rows
func (l ItemList) View(st *styles.Styles) string {
	width := max(l.width, 20)
	visible := l.maxVisible
	if visible <= 0 {
		visible = len(l.items)
	}

	var b strings.Builder
	end := min(l.offset+visible, len(l.items))
	for i := l.offset; i < end; i++ {
		if i > l.offset {
			b.WriteString("\n")
		}
		b.WriteString(l.renderRow(st, l.items[i], i == l.cursor, width))
	}
	return b.String()
}

func (l ItemList) renderRow(st *styles.Styles, item domain.ListItem, selected bool, width int) string {
	base, match := st.NormalItem, st.MatchHighlight
	marker := "  "
	if selected {
		base, match = st.SelectedItem, st.MatchHighlightSelected
		marker = st.Accent.Inherit(st.SelectedItem).Render("▌ ")
	}

	title := styles.Truncate(item.GetTitle(), width-4)
	titleLine := marker + HighlightMatches(title, l.query, base.Bold(true), match)

	sub := item.GetSubtitle()
	if tags := item.GetTags(); len(tags) > 0 {
		sub += " · " + strings.Join(tags, ", ")
	}
	subLine := "  " + base.Inherit(st.Dim).Render(styles.Truncate(sub, width-4))

	if selected {
		pad := lipgloss.NewStyle().Background(st.Palette.Selection)
		titleLine += pad.Render(strings.Repeat(" ", max(0, width-lipgloss.Width(titleLine))))
		subLine += pad.Render(strings.Repeat(" ", max(0, width-lipgloss.Width(subLine))))
	}
	return titleLine + "\n" + subLine
}

// HighlightMatches renders text with the characters matching query in match style
func HighlightMatches(text, query string, base, match lipgloss.Style) string {
	query = strings.TrimSpace(query)
	if query == "" || text == "" {
		return base.Render(text)
	}

	lower := strings.ToLower(text)
	matches := fuzzy.Find(strings.ToLower(query), []string{lower})
	if len(matches) == 0 {
		return base.Render(text)
	}

	// Matched indexes are byte offsets into lower; convert to rune positions
	matchSet := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, idx := range matches[0].MatchedIndexes {
		matchSet[utf8.RuneCountInString(lower[:idx])] = true
	}

	var b strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			b.WriteString(match.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}

	for i, r := range []rune(text) {
		if matchSet[i] != runMatched {
			flush()
			runMatched = matchSet[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}
