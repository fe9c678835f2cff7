package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/theme"
)

//go:embed templates/month.html.tmpl
var templates embed.FS

var monthTemplate = template.Must(template.ParseFS(templates, "templates/month.html.tmpl"))

// MonthSource walks the days of a month, calling fn once per day.
type MonthSource interface {
	Month(year int, month time.Month, fn func(app.Cell))
}

type chip struct {
	Initial string
	Name    string
	Color   string
	Text    string
}

func medChip(p theme.Palette, m record.Medication) chip {
	bg := p.Medications[string(m)]
	return chip{Initial: m.Initial(), Name: string(m), Color: string(bg), Text: string(theme.TextOn(bg))}
}

type cell struct {
	Num       int
	Empty     bool
	Recorded  bool
	Color     string
	Chips     []chip
	Pending   bool
	Completed bool
}

type legendEntry struct {
	Label string
	Color string
}

type page struct {
	Title   string
	Header  []string
	Weeks   [][]cell
	Palette theme.Palette
	Levels  []legendEntry
	Meds    []chip
}

// RenderMonth writes a standalone HTML page with the month grid under #screen.
func RenderMonth(w io.Writer, src MonthSource, year int, month time.Month, p theme.Palette) error {
	pg := page{
		Title:   day.MonthTitle(year, month),
		Header:  day.WeekHeader[:],
		Palette: p,
	}
	for _, l := range record.Levels() {
		pg.Levels = append(pg.Levels, legendEntry{Label: l.String(), Color: string(p.Levels[l.Tag()])})
	}
	for _, m := range record.Medications() {
		pg.Meds = append(pg.Meds, medChip(p, m))
	}

	week := make([]cell, day.Column(day.Date(year, month, 1)))
	for i := range week {
		week[i].Empty = true
	}
	src.Month(year, month, func(c app.Cell) {
		hc := cell{
			Num:       c.Date.Day(),
			Recorded:  c.HasRecord,
			Color:     string(p.Levels[c.Level.Tag()]),
			Pending:   c.PendingAppointment(),
			Completed: c.Appointment != nil && !c.Appointment.Pending(),
		}
		for _, m := range c.Medications {
			hc.Chips = append(hc.Chips, medChip(p, m))
		}
		week = append(week, hc)
		if len(week) == 7 {
			pg.Weeks = append(pg.Weeks, week)
			week = nil
		}
	})
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, cell{Empty: true})
		}
		pg.Weeks = append(pg.Weeks, week)
	}

	if err := monthTemplate.Execute(w, pg); err != nil {
		return fmt.Errorf("export: render %s: %w", pg.Title, err)
	}
	return nil
}
