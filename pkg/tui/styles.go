package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/allergy/pkg/theme"
)

type styles struct {
	palette theme.Palette

	title       lipgloss.Style
	muted       lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	header      lipgloss.Style
	day         lipgloss.Style
	recorded    lipgloss.Style
	today       lipgloss.Style
	selected    lipgloss.Style
	pending     lipgloss.Style
	done        lipgloss.Style
	dialog      lipgloss.Style
	cursor      lipgloss.Style
	status      lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		palette: p,
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		activeTab: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		header:   lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		day:      lipgloss.NewStyle().Foreground(p.Foreground),
		recorded: lipgloss.NewStyle().Bold(true),
		today:    lipgloss.NewStyle().Underline(true),
		selected: lipgloss.NewStyle().Reverse(true),
		pending:  lipgloss.NewStyle().Foreground(p.Appointment).Bold(true),
		done:     lipgloss.NewStyle().Foreground(p.Completed),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		cursor: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		status: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
	}
}

// level returns the cell style for a stored level tag.
func (s styles) level(tag string) lipgloss.Style {
	st := s.day
	if c, ok := s.palette.Levels[tag]; ok {
		st = st.Background(c).Foreground(theme.TextOn(c))
	}
	return st
}

func (s styles) med(name string) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(s.palette.Foreground)
	if c, ok := s.palette.Medications[name]; ok {
		st = st.Background(c).Foreground(theme.TextOn(c))
	}
	return st
}
