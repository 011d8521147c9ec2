package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, kinds.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success and high scores.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warning-severity findings and middling scores.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for error-severity findings and failing scores.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and summary lines.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleError styles error-severity findings.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)

	// StyleWarning styles warning-severity findings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleFixed styles the "fixed" annotation on repaired findings.
	StyleFixed = lipgloss.NewStyle().Foreground(ColorGreen)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatScore renders "Score: N/ceiling" colored by how close the score
// is to the ceiling: green at >=80%, yellow at >=50%, red below.
func FormatScore(score, ceiling int) string {
	text := fmt.Sprintf("Score: %d/%d", score, ceiling)

	var style lipgloss.Style
	switch {
	case score*100 >= ceiling*80:
		style = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case score*100 >= ceiling*50:
		style = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	default:
		style = StyleError
	}
	return style.Render(text)
}

// SeverityLabel renders a severity tag for a findings line.
func SeverityLabel(severity string) string {
	switch severity {
	case "error":
		return StyleError.Render("ERROR")
	case "warning":
		return StyleWarning.Render("WARN")
	default:
		return severity
	}
}
