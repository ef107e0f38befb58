package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/epreport/epreport/pkg/rules"
)

// Severity colors matching the stylesheet shipped with the HTML
// reports (errorprone.css).
var (
	ErrorColor      = lipgloss.Color("#C5221F") // Red
	WarningColor    = lipgloss.Color("#B05A00") // Amber
	SuggestionColor = lipgloss.Color("#1967D2") // Blue
	UnknownColor    = lipgloss.Color("#5F6368") // Gray

	// Status colors
	Success = lipgloss.Color("#00D26A") // Bright green
	Failure = lipgloss.Color("#FF3838") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray
)

// Pre-configured styles
var (
	// Section headers
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	// Key/value display
	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	// Statistics
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	// Bracketed metadata
	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Issue type names, like the .tag class in the HTML reports
	TagStyle = lipgloss.NewStyle().
			Bold(true)

	// Catalog tags, like the .tags class in the HTML reports
	TagsStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Status styles
	PassStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Failure).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Divider
	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Report paths
	URLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D4AA")).
			Underline(true)
)

// SeverityStyle returns the appropriate style for a severity level.
func SeverityStyle(level string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch level {
	case rules.SeverityError:
		return base.Foreground(ErrorColor)
	case rules.SeverityWarning:
		return base.Foreground(WarningColor)
	case rules.SeveritySuggestion:
		return base.Foreground(SuggestionColor)
	case rules.SeverityUnknown:
		return base.Foreground(UnknownColor)
	default:
		return base.Foreground(Muted)
	}
}
