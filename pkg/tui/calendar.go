package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

// cellWidth is the printable width of one day, marker included.
const cellWidth = 7

// renderMonth draws a Monday-first grid for the month. Days are rendered from
// the cells the service reports; today and the selection overlay their style.
func renderMonth(src *app.Service, year int, month time.Month, selected, now time.Time, st styles) string {
	first := day.Date(year, month, 1)
	offset := day.Column(first)

	var cells []app.Cell
	src.Month(year, month, func(c app.Cell) { cells = append(cells, c) })

	var lines []string
	header := make([]string, 0, 7)
	for _, h := range day.WeekHeader {
		header = append(header, st.header.Width(cellWidth).Render(h))
	}
	lines = append(lines, strings.Join(header, ""))

	total := offset + len(cells)
	rows := (total + 6) / 7
	for row := 0; row < rows; row++ {
		var out []string
		for col := 0; col < 7; col++ {
			i := row*7 + col - offset
			if i < 0 || i >= len(cells) {
				out = append(out, strings.Repeat(" ", cellWidth))
				continue
			}
			out = append(out, renderDay(cells[i], selected, now, st))
		}
		lines = append(lines, strings.Join(out, ""))
	}
	return strings.Join(lines, "\n")
}

func renderDay(c app.Cell, selected, now time.Time, st styles) string {
	text := fmt.Sprintf("%2d", c.Date.Day())
	var meds strings.Builder
	for _, m := range c.Medications {
		meds.WriteString(m.Initial())
	}
	text += " " + padRight(meds.String(), 3)

	marker := " "
	switch {
	case c.Appointment != nil && c.Appointment.Pending():
		marker = st.pending.Render("•")
	case c.Appointment != nil:
		marker = st.done.Render("✓")
	}
	style := st.muted
	if c.HasRecord {
		style = st.level(c.Level.Tag()).Inherit(st.recorded)
	}
	if day.Equal(c.Date, now) {
		style = style.Inherit(st.today)
	}
	if day.Equal(c.Date, selected) {
		style = st.selected.Inherit(style)
	}
	return style.Render(text) + marker
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// levelChips renders the level choices, highlighting the active one.
func levelChips(active record.Level, st styles) string {
	var out []string
	for i, l := range record.Levels() {
		label := fmt.Sprintf("%d %s", i+1, l)
		s := st.level(l.Tag()).Padding(0, 1)
		if l != active {
			s = st.muted.Padding(0, 1)
		}
		out = append(out, s.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

var medKeys = map[string]record.Medication{}

func init() {
	for _, m := range record.Medications() {
		medKeys[strings.ToLower(m.Initial())] = m
	}
}

func medChips(selected []record.Medication, st styles) string {
	var out []string
	for _, m := range record.Medications() {
		box := "[ ]"
		s := st.muted
		if record.Has(selected, m) {
			box = "[x]"
			s = st.med(string(m))
		}
		out = append(out, s.Render(fmt.Sprintf("%s %s %s", strings.ToLower(m.Initial()), box, m)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
