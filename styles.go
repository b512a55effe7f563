package cssprune

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the report renderers. Lipgloss degrades colors
// automatically based on terminal capabilities.
var (
	// StyleHeader is used for section headers and file paths.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleUnused is used for unused classes and failure messages.
	StyleUnused = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleUsed is used for used classes and success messages.
	StyleUsed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleWarn is used for mixed or ambiguous results.
	StyleWarn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleHint is used for tips and secondary detail.
	StyleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
