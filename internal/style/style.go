// Package style provides consistent terminal styling for the chemformula
// command using Lipgloss.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass   = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#7fd962"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#f07178"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#59c2ff"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#8a919a"}
)

var (
	// Success style for valid input (green)
	Success = lipgloss.NewStyle().
		Foreground(colorPass).
		Bold(true)

	// Error style for rejected input (red)
	Error = lipgloss.NewStyle().
		Foreground(colorFail).
		Bold(true)

	// Info style for formulas and values (blue)
	Info = lipgloss.NewStyle().
		Foreground(colorAccent)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(colorMuted)

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)

	// SuccessPrefix is the checkmark prefix for valid input.
	SuccessPrefix = Success.Render("✓")

	// ErrorPrefix is the cross prefix for rejected input.
	ErrorPrefix = Error.Render("✗")
)

// Verdict renders a boolean as a styled yes or no.
func Verdict(ok bool) string {
	if ok {
		return Success.Render("yes")
	}
	return Dim.Render("no")
}

// FractionBar renders a fraction between 0 and 1 as a bar of the given
// width followed by the percentage with the given number of decimals.
func FractionBar(fraction float64, width, decimals int) string {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %.*f%%", Info.Render(bar), decimals, 100*fraction)
}
