package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is drawn with
type Palette struct {
	Name      string
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Dim       lipgloss.Color
	Surface   lipgloss.Color
	Selection lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
}

// Color palettes
var (
	Light = Palette{
		Name:      "light",
		Accent:    lipgloss.Color("#4640DE"),
		Text:      lipgloss.Color("#25324B"),
		Muted:     lipgloss.Color("#515B6F"),
		Dim:       lipgloss.Color("#A8ADB7"),
		Surface:   lipgloss.Color("#F8F8FD"),
		Selection: lipgloss.Color("#E9EBFD"),
		Error:     lipgloss.Color("#DC2626"),
		Success:   lipgloss.Color("#059669"),
	}

	Dark = Palette{
		Name:      "dark",
		Accent:    lipgloss.Color("#818CF8"),
		Text:      lipgloss.Color("#F9FAFB"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Dim:       lipgloss.Color("#6B7280"),
		Surface:   lipgloss.Color("#1F2937"),
		Selection: lipgloss.Color("#374151"),
		Error:     lipgloss.Color("#EF4444"),
		Success:   lipgloss.Color("#10B981"),
	}
)

// PaletteFor returns the palette named name, defaulting to Light
func PaletteFor(name string) Palette {
	if name == Dark.Name {
		return Dark
	}
	return Light
}

// Styles holds every style the UI renders with, derived from one palette
type Styles struct {
	Palette Palette

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	// Tabs
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	// List rows
	SelectedItem           lipgloss.Style
	NormalItem             lipgloss.Style
	MatchHighlight         lipgloss.Style
	MatchHighlightSelected lipgloss.Style

	// Panels
	Panel      lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Label      lipgloss.Style

	// Misc
	Badge        lipgloss.Style
	Spinner      lipgloss.Style
	FilterPrompt lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// New builds the styles for a palette
func New(p Palette) *Styles {
	return &Styles{
		Palette: p,

		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Dim:      lipgloss.NewStyle().Foreground(p.Dim),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Error),
		Success:  lipgloss.NewStyle().Foreground(p.Success),

		ActiveTab: lipgloss.NewStyle().
			Foreground(p.Surface).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Selection),
		NormalItem: lipgloss.NewStyle().
			Foreground(p.Muted),
		MatchHighlight: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		MatchHighlightSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Selection).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(14),

		Badge: lipgloss.NewStyle().
			Foreground(p.Accent).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(p.Dim).
			Padding(0, 1),
		Spinner:      lipgloss.NewStyle().Foreground(p.Accent),
		FilterPrompt: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		HelpKey:      lipgloss.NewStyle().Foreground(p.Accent),
		HelpDesc:     lipgloss.NewStyle().Foreground(p.Dim),
	}
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
