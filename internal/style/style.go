// Package style defines the shell's lipgloss styles (SPEC_FULL.md §2.3),
// grounded on toba-jig/cmd/doctor.go's passStyle/failStyle pattern:
// a handful of named styles, degrading to plain text when color is off.
package style

import "github.com/charmbracelet/lipgloss"

// Styles holds the shell's named rendering styles. A zero-value Styles
// (Enabled: false) renders everything as plain text.
type Styles struct {
	Enabled bool

	errorStyle      lipgloss.Style
	notFoundStyle   lipgloss.Style
	candidateStyle  lipgloss.Style
}

// New builds Styles; enabled mirrors config.Config.ColorEnabled() combined
// with whether stdout is a terminal.
func New(enabled bool) Styles {
	return Styles{
		Enabled:        enabled,
		errorStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		notFoundStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		candidateStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	}
}

// Error renders a stderr-bound error line.
func (s Styles) Error(text string) string {
	if !s.Enabled {
		return text
	}
	return s.errorStyle.Render(text)
}

// NotFound renders a "command not found" line.
func (s Styles) NotFound(text string) string {
	if !s.Enabled {
		return text
	}
	return s.notFoundStyle.Render(text)
}

// Candidate renders one entry in a completion-candidate listing.
func (s Styles) Candidate(text string) string {
	if !s.Enabled {
		return text
	}
	return s.candidateStyle.Render(text)
}
