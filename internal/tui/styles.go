package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#6b7280")
	colorError  = lipgloss.Color("#ffb4b4")
	colorBorder = lipgloss.Color("#2a3850")
)

// Styles holds the styled components of the page.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Help     lipgloss.Style
	Disabled lipgloss.Style
	Pane     lipgloss.Style
	Output   lipgloss.Style
	Error    lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the stock page styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Bold(true).
			Width(8),
		Selected: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true),
		Option: lipgloss.NewStyle().
			Foreground(colorMuted),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Disabled: lipgloss.NewStyle().
			Foreground(colorMuted).
			Faint(true),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Output: lipgloss.NewStyle(),
		Error: lipgloss.NewStyle().
			Foreground(colorError),
		Footer: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
