package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

// MonthSource walks the days of a month, calling fn once per day.
type MonthSource interface {
	Month(year int, month time.Month, fn func(app.Cell))
}

const (
	cellWidth = 8 // "dd" + four initials + marker + padding
	gridWidth = 7*cellWidth - 1
)

// Calendar prints the month grid. Level sets the day color, initials show the
// medications taken and a dot marks a pending appointment.
func (pp *PrettyPrint) Calendar(src MonthSource, year int, month time.Month) {
	tf := color.New(color.Bold, color.Italic)
	title := day.MonthTitle(year, month)
	mid := (gridWidth - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(color.Output, "%s%s\n", strings.Repeat(" ", mid), title)

	hf := color.New(color.Faint)
	cols := make([]string, 0, len(day.WeekHeader))
	for _, h := range day.WeekHeader {
		cols = append(cols, padRight(h, cellWidth-1))
	}
	_, _ = hf.Fprintln(color.Output, strings.Join(cols, " "))

	// Pad out the start of the month.
	col := day.Column(day.Date(year, month, 1))
	_, _ = fmt.Fprint(color.Output, strings.Repeat(" ", col*cellWidth))

	now := pp.now()
	src.Month(year, month, func(c app.Cell) {
		_, _ = fmt.Fprint(color.Output, pp.cell(c, day.Equal(c.Date, now)))
		col++
		if col == 7 {
			col = 0
			_, _ = fmt.Fprint(color.Output, "\n")
		} else {
			_, _ = fmt.Fprint(color.Output, " ")
		}
	})
	if col != 0 {
		_, _ = fmt.Fprint(color.Output, "\n")
	}
	pp.NewLine()
}

func (pp *PrettyPrint) cell(c app.Cell, today bool) string {
	num := LevelColor(c.Level)
	if c.HasRecord {
		num.Add(color.Bold)
	} else {
		num.Add(color.Faint)
	}
	if today {
		num.Add(color.Underline)
	}

	var initials strings.Builder
	for _, m := range c.Medications {
		initials.WriteString(m.Initial())
	}

	marker := " "
	switch {
	case c.PendingAppointment():
		marker = color.New(color.FgHiBlue, color.Bold).Sprint("•")
	case c.Appointment != nil:
		marker = color.New(color.FgGreen).Sprint("✓")
	}

	meds := color.New(color.FgCyan).Sprint(padRight(initials.String(), len(record.Medications())))
	return num.Sprintf("%2d", c.Date.Day()) + meds + marker
}

func padRight(s string, n int) string {
	w := len([]rune(s))
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
