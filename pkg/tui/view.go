package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/theme"
)

const paneWidth = 36

func (m *Model) View() string {
	st := newStyles(theme.PaletteFor(m.theme.Current()))
	now := m.now()

	title := st.title.Render("Calendario de alergia")
	if m.status != "" {
		title += "  " + st.status.Render(m.status)
	}

	tab := m.view.Tab()
	grid := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(day.MonthTitle(tab.Year, tab.Month)),
		"",
		renderMonth(m.svc, tab.Year, tab.Month, m.view.SelectedInTab(), now, st),
		"",
		m.legend(st),
	)

	var side string
	switch m.mode() {
	case modeEditor:
		side = m.editorView(st)
	case modeManager:
		side = m.managerView(st)
	default:
		side = m.dayView(st)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", side)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.tabsView(st),
		"",
		body,
		"",
		m.help.View(m.helpKeys()),
	)
}

func (m *Model) tabsView(st styles) string {
	active := m.view.Tab()
	var years []string
	for _, y := range m.view.Years() {
		s := st.inactiveTab
		if y == active.Year {
			s = st.activeTab
		}
		years = append(years, s.Render(fmt.Sprint(y)))
	}
	var months []string
	for _, mo := range m.view.MonthsIn(active.Year) {
		s := st.inactiveTab
		if mo == active.Month {
			s = st.activeTab
		}
		months = append(months, s.Render(day.MonthName(mo)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(years, " "),
		strings.Join(months, " "),
	)
}

func (m *Model) legend(st styles) string {
	var parts []string
	for _, med := range record.Medications() {
		parts = append(parts, st.med(string(med)).Render(med.Initial())+" "+string(med))
	}
	parts = append(parts, st.pending.Render("•")+" cita", st.done.Render("✓")+" completada")
	return st.muted.Render(strings.Join(parts, "  "))
}

func (m *Model) dayView(st styles) string {
	d := m.view.SelectedInTab()
	c := m.svc.CellFor(d)
	lines := []string{st.title.Render(day.Long(d))}
	if c.HasRecord {
		lines = append(lines, st.level(c.Level.Tag()).Padding(0, 1).Render(c.Level.String()))
		var meds []string
		for _, med := range c.Medications {
			meds = append(meds, st.med(string(med)).Render(string(med)))
		}
		if len(meds) > 0 {
			lines = append(lines, strings.Join(meds, " "))
		}
	} else {
		lines = append(lines, st.muted.Render("sin registro"))
	}
	if c.Appointment != nil {
		mark := st.pending.Render("• ")
		if !c.Appointment.Pending() {
			mark = st.done.Render("✓ ")
		}
		lines = append(lines, mark+wordwrap.String(c.Appointment.Description, paneWidth-2))
	}

	pending := m.svc.Appointments.ListPending()
	lines = append(lines, "", st.header.Render(fmt.Sprintf("citas pendientes (%d)", len(pending))))
	for _, a := range pending {
		lines = append(lines, wordwrap.String(fmt.Sprintf("%s  %s", day.Key(a.Date.Time), a.Description), paneWidth))
	}
	return st.dialog.Width(paneWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) editorView(st styles) string {
	e := m.editor
	lines := []string{
		st.title.Render(day.Long(e.Date())),
		"",
		st.header.Render("síntomas"),
		levelChips(e.Level(), st),
		"",
		st.header.Render("medicación"),
		medChips(e.Medications(), st),
		"",
	}
	if a, ok := e.Appointment(); ok && !a.Pending() {
		lines = append(lines, st.done.Render("✓ cita completada"))
	}
	lines = append(lines, m.note.View())
	return st.dialog.Width(paneWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) managerView(st styles) string {
	lines := []string{st.title.Render("Citas"), ""}
	list := m.manager.List()
	if len(list) == 0 {
		lines = append(lines, st.muted.Render("no hay citas"))
	}
	editing, isEditing := m.manager.Editing()
	for i, a := range list {
		mark := st.pending.Render("•")
		if !a.Pending() {
			mark = st.done.Render("✓")
		}
		prefix := "  "
		if i == m.cursor {
			prefix = st.cursor.Render("> ")
		}
		if isEditing && i == editing {
			prefix = st.cursor.Render("* ")
		}
		text := wordwrap.String(a.Description, paneWidth-16)
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, mark, day.Key(a.Date.Time), text))
	}
	if m.formOpen {
		label := "nueva cita"
		if isEditing {
			label = "editar cita"
		}
		lines = append(lines, "", st.header.Render(label), m.formDate.View(), m.formDesc.View())
	}
	return st.dialog.Width(paneWidth + 8).Render(strings.Join(lines, "\n"))
}
