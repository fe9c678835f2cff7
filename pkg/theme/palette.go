package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colors a theme renders with.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color

	// Levels are keyed by the stored level tag.
	Levels map[string]lipgloss.Color

	// Medications are chip colors keyed by medication name.
	Medications map[string]lipgloss.Color

	Appointment lipgloss.Color
	Completed   lipgloss.Color
}

// PaletteFor returns the palette for t.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return Palette{
			Background: lipgloss.Color("#111827"),
			Foreground: lipgloss.Color("#e5e7eb"),
			Muted:      lipgloss.Color("#6b7280"),
			Accent:     lipgloss.Color("#38bdf8"),
			Border:     lipgloss.Color("#374151"),
			Levels: map[string]lipgloss.Color{
				"green":  lipgloss.Color("#065f46"),
				"yellow": lipgloss.Color("#854d0e"),
				"orange": lipgloss.Color("#9a3412"),
				"red":    lipgloss.Color("#9f1239"),
			},
			Medications: map[string]lipgloss.Color{
				"Bilaxten": lipgloss.Color("#1e3a8a"),
				"Relvar":   lipgloss.Color("#581c87"),
				"Ventolin": lipgloss.Color("#134e4a"),
				"Dymista":  lipgloss.Color("#831843"),
			},
			Appointment: lipgloss.Color("#0369a1"),
			Completed:   lipgloss.Color("#047857"),
		}
	}
	return Palette{
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#9ca3af"),
		Accent:     lipgloss.Color("#2563eb"),
		Border:     lipgloss.Color("#d1d5db"),
		Levels: map[string]lipgloss.Color{
			"green":  lipgloss.Color("#bbf7d0"),
			"yellow": lipgloss.Color("#fef08a"),
			"orange": lipgloss.Color("#fed7aa"),
			"red":    lipgloss.Color("#fecaca"),
		},
		Medications: map[string]lipgloss.Color{
			"Bilaxten": lipgloss.Color("#dbeafe"),
			"Relvar":   lipgloss.Color("#f3e8ff"),
			"Ventolin": lipgloss.Color("#ccfbf1"),
			"Dymista":  lipgloss.Color("#fce7f3"),
		},
		Appointment: lipgloss.Color("#3b82f6"),
		Completed:   lipgloss.Color("#6ee7b7"),
	}
}

// Text colors placed on top of level and medication chips.
const (
	DarkText  = lipgloss.Color("#111827")
	LightText = lipgloss.Color("#f9fafb")
)

// TextOn returns the text color that reads best on bg. Unparsable colors get
// DarkText.
func TextOn(bg lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		return DarkText
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return DarkText
	}
	return LightText
}
