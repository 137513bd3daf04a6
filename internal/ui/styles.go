package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles for terminal output.
type Styles struct {
	enabled bool

	// Severity styles
	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Rule      lipgloss.Style
	Score     lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconSuccess string
	IconWarning string
	IconChange  string
}

// NewStyles creates a Styles instance. When enabled is false, styles pass
// text through unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.High = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Medium = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Low = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))    // Blue

		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Rule = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Score = lipgloss.NewStyle().Bold(true)

		s.IconSuccess = "✓"
		s.IconWarning = "⚠"
		s.IconChange = "✎"
	} else {
		s.High = lipgloss.NewStyle()
		s.Medium = lipgloss.NewStyle()
		s.Low = lipgloss.NewStyle()

		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Rule = lipgloss.NewStyle()
		s.Score = lipgloss.NewStyle()

		s.IconSuccess = "OK:"
		s.IconWarning = "WARN:"
		s.IconChange = "EDIT:"
	}

	return s
}

// Enabled reports whether styling is enabled.
func (s *Styles) Enabled() bool {
	return s.enabled
}
