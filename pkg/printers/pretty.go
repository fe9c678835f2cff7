package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
	Now    func() time.Time
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " cita")
	default:
		_, _ = c.Fprintln(color.Output, " citas")
	}
}

func none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(color.Output, " ninguna\n\n")
}

// Appointments prints a table numbered by position. The numbers are the
// positions the appointment commands accept.
func (pp *PrettyPrint) Appointments(items ...appointment.Appointment) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	pp.appointments(idx, items)
}

// PendingAppointments prints only open appointments, keeping each one's
// position in all.
func (pp *PrettyPrint) PendingAppointments(all ...appointment.Appointment) {
	var (
		idx   []int
		items []appointment.Appointment
	)
	for i, a := range all {
		if a.Pending() {
			idx = append(idx, i)
			items = append(items, a)
		}
	}
	if idx == nil {
		idx = []int{}
	}
	pp.appointments(idx, items)
}

// appointments prints the table; a nil idx drops the position column.
func (pp *PrettyPrint) appointments(idx []int, items []appointment.Appointment) {
	if len(items) == 0 {
		none()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	var header []interface{}
	if idx != nil {
		header = append(header, bold.Sprint("#"))
	}
	header = append(header, bold.Sprint("Fecha"), bold.Sprint("Descripción"), bold.Sprint("Estado"))
	if pp.ShowID {
		header = append(header, bold.Sprint("ID"))
	}
	tbl.AddRow(header...)

	for i, a := range items {
		status := StatusColor(a.Status).Sprint(a.Status.String())
		desc := a.Description
		if !a.Pending() {
			desc = faint.Sprint(desc)
		}
		var row []interface{}
		if idx != nil {
			row = append(row, idx[i])
		}
		row = append(row, day.Long(a.Date.Time), desc, status)
		if pp.ShowID {
			row = append(row, id.Sprint(a.ID))
		}
		tbl.AddRow(row...)
	}
	if idx != nil {
		tbl.RightAlign(0)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Day prints everything recorded for one calendar day.
func (pp *PrettyPrint) Day(c app.Cell) {
	pp.Title(day.Long(c.Date))

	tbl := uitable.New()
	tbl.Separator = "  "
	label := color.New(color.Faint)

	level := "sin registro"
	if c.HasRecord {
		level = LevelColor(c.Level).Sprint(" " + c.Level.String() + " ")
	}
	tbl.AddRow(label.Sprint("Síntomas"), level)

	meds := make([]string, 0, len(c.Medications))
	for _, m := range c.Medications {
		meds = append(meds, string(m))
	}
	if len(meds) == 0 {
		meds = append(meds, "-")
	}
	tbl.AddRow(label.Sprint("Medicamentos"), strings.Join(meds, ", "))

	cita := "-"
	if c.Appointment != nil {
		cita = fmt.Sprintf("%s (%s)", c.Appointment.Description, StatusColor(c.Appointment.Status).Sprint(c.Appointment.Status))
	}
	tbl.AddRow(label.Sprint("Cita"), cita)

	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Report prints the summary produced by app.Service.Report.
func (pp *PrettyPrint) Report(r app.ReportResult, window string) {
	title := fmt.Sprintf("%s - %s", day.Long(r.Since), day.Long(r.Until))
	if window != "" {
		title += " (" + window + ")"
	}
	pp.Title(title)

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Días registrados"), r.Recorded)
	for _, lc := range r.Levels {
		tbl.AddRow(LevelColor(lc.Level).Sprint("  "), fmt.Sprintf("%s: %d", lc.Level, lc.Days))
	}
	for _, mc := range r.Medications {
		tbl.AddRow(mc.Medication.Initial(), fmt.Sprintf("%s: %d", mc.Medication, mc.Days))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()

	pp.TitleWithCount("Citas pendientes", len(r.Pending))
	pp.appointments(nil, r.Pending)
}

// LevelColor is the swatch used for a symptom level.
func LevelColor(l record.Level) *color.Color {
	switch l {
	case record.Clear:
		return color.New(color.BgGreen, color.FgBlack)
	case record.Mild:
		return color.New(color.BgYellow, color.FgBlack)
	case record.Moderate:
		return color.New(color.BgHiRed, color.FgBlack)
	case record.Severe:
		return color.New(color.BgRed, color.FgHiWhite)
	default:
		return color.New()
	}
}

func StatusColor(s appointment.Status) *color.Color {
	if s == appointment.Completed {
		return color.New(color.FgGreen)
	}
	return color.New(color.FgHiBlue)
}
