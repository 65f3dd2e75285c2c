package tui

import (
	"github.com/charmbracelet/lipgloss"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
)

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Progress lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Subtle   lipgloss.Style
	Label    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Headline lipgloss.Style
	Emphasis lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	Improved lipgloss.Style
	Declined lipgloss.Style
	Same     lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	return Styles{
		Progress: lipgloss.NewStyle().Foreground(subtle).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Body:     lipgloss.NewStyle(),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),
		Label:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Underline(true),
		Headline: lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),
		Emphasis: lipgloss.NewStyle().Bold(true),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(subtle).
			PaddingLeft(1).
			MarginBottom(1),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:  lipgloss.NewStyle().Foreground(subtle).MarginTop(1),

		Improved: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Declined: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Same:     lipgloss.NewStyle().Foreground(subtle),
	}
}

// Badge renders the delta badge shown next to a domain in check-in mode.
func (s Styles) Badge(d domain.Delta) string {
	switch d {
	case types.DeltaImproved:
		return s.Improved.Render(d.Badge())
	case types.DeltaDeclined:
		return s.Declined.Render(d.Badge())
	case types.DeltaSame:
		return s.Same.Render(d.Badge())
	}
	return ""
}
