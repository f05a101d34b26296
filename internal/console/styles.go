package console

import "github.com/charmbracelet/lipgloss"

var (
	Violet = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#94A3B8")
	Rose   = lipgloss.Color("#E11D48")
	White  = lipgloss.Color("#F8FAFC")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White).
			Background(lipgloss.Color("#4C1D95")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Violet)

	taglineStyle = lipgloss.NewStyle().
			Foreground(Slate).
			Italic(true)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Rose)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525B"))
)

func swatchBlock(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("      ")
}
