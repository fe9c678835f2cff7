// Package mark provides CLI helpers to show and edit a single day.
package mark

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/printers"
	"tableflip.dev/allergy/pkg/record"
)

var errNoService = errors.New("can not mark, no service")

func show(svc *app.Service, on time.Time, format string) error {
	c := svc.CellFor(on)
	if format != "" && format != printers.FormatPretty {
		return printers.Structured(color.Output, format, c)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(c)
	return nil
}

// Show prints what is recorded for a day.
type Show struct {
	Service *app.Service
	On      time.Time
	Format  string
}

func (s *Show) Do(_ context.Context) error {
	if s.Service == nil {
		return errNoService
	}
	return show(s.Service, s.On, s.Format)
}

// Set edits a day the same way the calendar editor does: the record is always
// written and a non-blank appointment is upserted.
type Set struct {
	Service *app.Service
	On      time.Time
	Format  string

	// Level is left alone when nil.
	Level *record.Level
	// Medications replaces the day's list when ReplaceMedications is set.
	Medications        []record.Medication
	ReplaceMedications bool
	Toggle             []record.Medication
	Appointment        string
}

func (s *Set) Do(ctx context.Context) error {
	if s.Service == nil {
		return errNoService
	}
	ed := s.Service.OpenDay(s.On)
	if s.Level != nil {
		ed.SetLevel(*s.Level)
	}
	if s.ReplaceMedications {
		want := record.Normalize(s.Medications)
		for _, m := range record.Medications() {
			if record.Has(ed.Medications(), m) != record.Has(want, m) {
				ed.ToggleMedication(m)
			}
		}
	}
	for _, m := range s.Toggle {
		ed.ToggleMedication(m)
	}
	if s.Appointment != "" {
		ed.SetAppointmentText(s.Appointment)
	}
	if err := ed.Save(ctx); err != nil {
		return err
	}
	return show(s.Service, s.On, s.Format)
}

// Clear resets a day to no level and no medications. With Appointment set the
// day's appointment is removed as well.
type Clear struct {
	Service     *app.Service
	On          time.Time
	Format      string
	Appointment bool
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Service == nil {
		return errNoService
	}
	ed := c.Service.OpenDay(c.On)
	ed.ClearLevel()
	for _, m := range ed.Medications() {
		ed.ToggleMedication(m)
	}
	if c.Appointment {
		if err := ed.RemoveAppointment(ctx); err != nil {
			return err
		}
	}
	if err := ed.Save(ctx); err != nil {
		return err
	}
	return show(c.Service, c.On, c.Format)
}
