package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/jobboard/internal/tui/styles"
)

var testFields = []FieldSpec{
	{Key: "title", Label: "Title", Required: true},
	{Key: "tags", Label: "Tags"},
}

func TestForm_TypeAndSubmit(t *testing.T) {
	f := NewForm()
	f.Show("New job", testFields)
	assert.True(t, f.IsVisible())

	f, _, submitted := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Go Developer")})
	assert.False(t, submitted)

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go, sql")})

	f, _, submitted = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submitted)
	assert.Equal(t, map[string]string{"title": "Go Developer", "tags": "go, sql"}, f.Values())
}

func TestForm_SubmittingBlocksResubmit(t *testing.T) {
	f := NewForm()
	f.Show("New job", testFields)
	f.SetSubmitting(true)

	f, _, submitted := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, submitted)

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, f.Values()["title"])
}

func TestForm_ErrorAndCancel(t *testing.T) {
	st := styles.New(styles.Dark)
	f := NewForm()
	f.Show("New job", testFields)
	f.SetError("title is required", []string{"title"})

	assert.Contains(t, f.View(st, ""), "title is required")
	assert.False(t, f.Submitting())

	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.IsVisible())
	assert.Empty(t, f.View(st, ""))
}
