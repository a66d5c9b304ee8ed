package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/jobboard/internal/tui/styles"
)

// FieldSpec describes one input of a Form
type FieldSpec struct {
	Key         string // Wire name; validation errors refer to it
	Label       string
	Placeholder string
	Required    bool
}

// Form is a modal with one text input per field
type Form struct {
	visible    bool
	title      string
	specs      []FieldSpec
	inputs     []textinput.Model
	focus      int
	errMsg     string
	invalid    map[string]bool
	submitting bool
	keys       FormKeyMap
}

// NewForm creates a hidden form
func NewForm() Form {
	return Form{keys: DefaultFormKeyMap()}
}

// Show displays the form with empty inputs for specs
func (f *Form) Show(title string, specs []FieldSpec) {
	f.visible = true
	f.title = title
	f.specs = specs
	f.errMsg = ""
	f.invalid = nil
	f.submitting = false
	f.focus = 0

	f.inputs = make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.CharLimit = 500
		ti.Width = 40
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// Hide dismisses the form
func (f *Form) Hide() {
	f.visible = false
	f.submitting = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown
func (f Form) IsVisible() bool {
	return f.visible
}

// Submitting reports whether a submission is awaiting its result
func (f Form) Submitting() bool {
	return f.submitting
}

// SetSubmitting marks the form as waiting for the server
func (f *Form) SetSubmitting(v bool) {
	f.submitting = v
	if v {
		f.errMsg = ""
		f.invalid = nil
	}
}

// SetError shows msg under the inputs and marks fields as invalid
func (f *Form) SetError(msg string, fields []string) {
	f.submitting = false
	f.errMsg = msg
	f.invalid = make(map[string]bool, len(fields))
	for _, name := range fields {
		f.invalid[name] = true
	}
	// Move focus to the first offending field
	for i, spec := range f.specs {
		if f.invalid[spec.Key] {
			f.setFocus(i)
			break
		}
	}
}

// Values returns the input values keyed by FieldSpec.Key
func (f Form) Values() map[string]string {
	values := make(map[string]string, len(f.specs))
	for i, spec := range f.specs {
		values[spec.Key] = f.inputs[i].Value()
	}
	return values
}

// SetValue fills the input for field key
func (f *Form) SetValue(field, value string) {
	for i, spec := range f.specs {
		if spec.Key == field {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *Form) setFocus(i int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Update handles input events, returns (form, cmd, submitted)
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Cancel):
			f.Hide()
			return f, nil, false
		case key.Matches(keyMsg, f.keys.Submit):
			if f.submitting {
				return f, nil, false
			}
			return f, nil, true
		case key.Matches(keyMsg, f.keys.Next):
			f.setFocus(f.focus + 1)
			return f, nil, false
		case key.Matches(keyMsg, f.keys.Prev):
			f.setFocus(f.focus - 1)
			return f, nil, false
		}
	}

	if f.submitting || len(f.inputs) == 0 {
		return f, nil, false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

// View renders the form; status is shown while submitting
func (f Form) View(st *styles.Styles, status string) string {
	if !f.visible {
		return ""
	}

	lines := []string{st.ModalTitle.Render(f.title)}
	for i, spec := range f.specs {
		label := spec.Label
		if spec.Required {
			label += " *"
		}

		labelStyle := st.Label
		switch {
		case f.invalid[spec.Key]:
			labelStyle = labelStyle.Foreground(st.Palette.Error)
		case i == f.focus:
			labelStyle = labelStyle.Foreground(st.Palette.Accent)
		}

		input := f.inputs[i]
		input.TextStyle = lipgloss.NewStyle().Foreground(st.Palette.Text)
		input.PlaceholderStyle = st.Dim
		lines = append(lines, labelStyle.Render(label)+input.View())
	}

	lines = append(lines, "")
	switch {
	case f.submitting:
		lines = append(lines, st.Accent.Render(status))
	case f.errMsg != "":
		lines = append(lines, st.Error.Render(f.errMsg))
	default:
		lines = append(lines, st.Dim.Render("enter submit · tab next field · esc cancel"))
	}

	return st.Modal.Render(strings.Join(lines, "\n"))
}
