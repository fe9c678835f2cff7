// Package cal prints the month calendar.
package cal

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/printers"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/view"
)

type Cal struct {
	Service *app.Service
	Season  []time.Month

	// Year and Month pick the month shown. Zero values fall back to the tab
	// the calendar opens on.
	Year  int
	Month time.Month
	// All shows every month tab of the year.
	All bool

	Format string
	Now    func() time.Time
}

type monthOut struct {
	Year  int        `json:"year" yaml:"year"`
	Month string     `json:"month" yaml:"month"`
	Cells []app.Cell `json:"days" yaml:"days"`
}

func (c *Cal) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Months resolves which months to print.
func (c *Cal) Months() []view.Tab {
	v := c.Service.View(c.Season)
	year := c.Year
	if year == 0 {
		year = v.Year()
		if c.Month != 0 {
			year = c.now().Year()
		}
	}

	if c.All {
		months := v.MonthsIn(year)
		if len(months) == 0 {
			months = c.Season
		}
		tabs := make([]view.Tab, 0, len(months))
		for _, m := range months {
			tabs = append(tabs, view.Tab{Year: year, Month: m})
		}
		return tabs
	}

	if c.Month != 0 {
		return []view.Tab{{Year: year, Month: c.Month}}
	}
	if c.Year != 0 && c.Year != v.Year() {
		if !v.SetYear(c.Year) {
			return []view.Tab{{Year: c.Year, Month: v.Tab().Month}}
		}
	}
	return []view.Tab{v.Tab()}
}

func (c *Cal) Do(_ context.Context) error {
	if c.Service == nil {
		return errors.New("can not print calendar, no service")
	}
	tabs := c.Months()

	if c.Format != "" && c.Format != printers.FormatPretty {
		out := make([]monthOut, 0, len(tabs))
		for _, t := range tabs {
			mo := monthOut{Year: t.Year, Month: day.MonthName(t.Month)}
			c.Service.Month(t.Year, t.Month, func(cell app.Cell) {
				if cell.HasRecord || cell.Appointment != nil {
					mo.Cells = append(mo.Cells, cell)
				}
			})
			out = append(out, mo)
		}
		return printers.Structured(color.Output, c.Format, out)
	}

	pp := printers.PrettyPrint{Now: c.Now}
	pp.NewLine()
	for _, t := range tabs {
		pp.Calendar(c.Service, t.Year, t.Month)
	}
	legend(c.Service, tabs)
	return nil
}

// legend prints a one line reminder of what the initials mean when any of the
// printed months uses them.
func legend(svc *app.Service, tabs []view.Tab) {
	used := false
	for _, t := range tabs {
		for _, r := range svc.Records.InMonth(t.Year, t.Month) {
			if len(r.Medications) > 0 {
				used = true
			}
		}
	}
	if !used {
		return
	}
	f := color.New(color.Faint)
	for _, m := range record.Medications() {
		_, _ = f.Fprintf(color.Output, "%s=%s ", m.Initial(), m)
	}
	_, _ = f.Fprintln(color.Output, "")
}
