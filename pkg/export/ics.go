package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/logging"
)

// ProductID identifies calendars written by WriteICS.
const ProductID = "-//tableflip.dev//allergy//ES"

// WriteICS writes one all-day VEVENT per appointment. Completed appointments
// carry STATUS:COMPLETED, pending ones STATUS:CONFIRMED.
func WriteICS(w io.Writer, items []appointment.Appointment, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, a := range items {
		ev := cal.AddEvent(a.ID)
		ev.SetDtStampTime(stamp.UTC())
		start := day.Start(a.Date.Time)
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
		ev.SetSummary(a.Description)
		if a.Pending() {
			ev.SetStatus(ical.ObjectStatusConfirmed)
		} else {
			ev.SetStatus(ical.ObjectStatusCompleted)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("export: write calendar: %w", err)
	}
	return nil
}

// ReadICS reads appointments back from a calendar. Events without a start or
// a summary are skipped.
func ReadICS(r io.Reader) ([]appointment.Appointment, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("export: parse calendar: %w", err)
	}

	var out []appointment.Appointment
	for _, ev := range cal.Events() {
		a, err := fromEvent(ev)
		if err != nil {
			logging.Warn("skipping calendar event", "uid", ev.Id(), "err", err)
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func fromEvent(ev *ical.VEvent) (appointment.Appointment, error) {
	var on time.Time
	if start, err := ev.GetAllDayStartAt(); err == nil {
		// A DATE value names the day itself, whatever zone it was parsed in.
		on = day.Date(start.Year(), start.Month(), start.Day())
	} else if start, err := ev.GetStartAt(); err == nil {
		on = day.Start(start)
	} else {
		return appointment.Appointment{}, err
	}

	var summary string
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = strings.TrimSpace(unescapeText(p.Value))
	}
	if summary == "" {
		return appointment.Appointment{}, errors.New("missing summary")
	}

	status := appointment.Pending
	if p := ev.GetProperty(ical.ComponentPropertyStatus); p != nil && strings.EqualFold(p.Value, string(ical.ObjectStatusCompleted)) {
		status = appointment.Completed
	}

	return appointment.Appointment{
		ID:          ev.Id(),
		Date:        day.On(on),
		Description: summary,
		Status:      status,
	}, nil
}

var textUnescaper = strings.NewReplacer(`\\`, `\`, `\,`, `,`, `\;`, `;`, `\n`, "\n", `\N`, "\n")

func unescapeText(v string) string {
	return textUnescaper.Replace(v)
}
