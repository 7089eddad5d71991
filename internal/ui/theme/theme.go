package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on a theme
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	DateHeader lipgloss.Style
	Count      lipgloss.Style

	ItemNormal   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemTime     lipgloss.Style
	ItemDone     lipgloss.Style
	Comment      lipgloss.Style
	NoComment    lipgloss.Style

	Input       lipgloss.Style
	InputLabel  lipgloss.Style
	Placeholder lipgloss.Style

	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Primary),

		TabInactive: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 2),

		DateHeader: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		Count: lipgloss.NewStyle().
			Foreground(t.Subtle),

		ItemNormal: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		ItemTime: lipgloss.NewStyle().
			Foreground(t.Subtle),

		ItemDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Comment: lipgloss.NewStyle().
			Foreground(t.Info).
			PaddingLeft(4),

		NoComment: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			PaddingLeft(4),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground),

		InputLabel: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Info).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}

// Default is the built-in palette
func Default() Theme {
	return Theme{
		Name:       "default",
		Background: lipgloss.Color("#2E3440"),
		Foreground: lipgloss.Color("#D8DEE9"),
		Subtle:     lipgloss.Color("#4C566A"),
		Highlight:  lipgloss.Color("#434C5E"),
		Border:     lipgloss.Color("#3B4252"),
		Primary:    lipgloss.Color("#88C0D0"),
		Secondary:  lipgloss.Color("#81A1C1"),
		Success:    lipgloss.Color("#A3BE8C"),
		Warning:    lipgloss.Color("#EBCB8B"),
		Error:      lipgloss.Color("#BF616A"),
		Info:       lipgloss.Color("#5E81AC"),
	}
}

// Active bundles a theme with its computed styles
type Active struct {
	Theme  Theme
	Styles Styles
}

// Current is the active theme
var Current = Active{
	Theme:  Default(),
	Styles: NewStyles(Default()),
}
