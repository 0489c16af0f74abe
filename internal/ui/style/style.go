// Package style provides the colors and icons shared by the log handler and CLI reports.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/esb/internal/core/domain"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Teal   = lipgloss.Color("#1293D8")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Outcome returns the icon and color used to render a generation outcome.
func Outcome(o domain.Outcome) (string, lipgloss.Color) {
	switch o {
	case domain.OutcomeWritten:
		return Check, Green
	case domain.OutcomeUnchanged, domain.OutcomeCached:
		return Dot, Teal
	case domain.OutcomeSkipped:
		return Circle, Slate
	case domain.OutcomeFailed:
		return Cross, Red
	default:
		return Tilde, Slate
	}
}
