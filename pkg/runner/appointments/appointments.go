// Package appointments provides CLI helpers for the appointment manager.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/export"
	"tableflip.dev/allergy/pkg/printers"
)

var errNoService = errors.New("can not manage appointments, no service")

func list(svc *app.Service, pending, showID bool, format string) error {
	all := svc.Appointments.List()
	if format != "" && format != printers.FormatPretty {
		if pending {
			all = svc.Appointments.ListPending()
		}
		return printers.Structured(color.Output, format, all)
	}

	pp := printers.PrettyPrint{ShowID: showID}
	pp.NewLine()
	if pending {
		pp.TitleWithCount("Citas pendientes", len(svc.Appointments.ListPending()))
		pp.PendingAppointments(all...)
		return nil
	}
	pp.TitleWithCount("Citas", len(all))
	pp.Appointments(all...)
	return nil
}

// List prints appointments numbered by their position.
type List struct {
	Service *app.Service
	Pending bool
	ShowID  bool
	Format  string
}

func (l *List) Do(_ context.Context) error {
	if l.Service == nil {
		return errNoService
	}
	return list(l.Service, l.Pending, l.ShowID, l.Format)
}

// Add creates an appointment, or overwrites the one already on that day.
type Add struct {
	Service     *app.Service
	On          time.Time
	Description string
	Format      string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return errNoService
	}
	m := a.Service.Manager()
	m.SetDate(a.On)
	m.SetDescription(a.Description)
	if err := m.Add(ctx); err != nil {
		return err
	}
	return list(a.Service, false, false, a.Format)
}

// Edit rewrites the appointment at Index. Zero fields keep their value.
type Edit struct {
	Service     *app.Service
	Index       int
	On          time.Time
	Description string
	Format      string
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Service == nil {
		return errNoService
	}
	m := e.Service.Manager()
	if err := m.Edit(e.Index); err != nil {
		return fmt.Errorf("%w: %d", err, e.Index)
	}
	if !e.On.IsZero() {
		m.SetDate(e.On)
	}
	if e.Description != "" {
		m.SetDescription(e.Description)
	}
	if err := m.Save(ctx); err != nil {
		return err
	}
	return list(e.Service, false, false, e.Format)
}

// Delete removes an appointment by position, or by day when On is set.
type Delete struct {
	Service *app.Service
	Index   int
	On      time.Time
	Format  string
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Service == nil {
		return errNoService
	}
	if !d.On.IsZero() {
		ok, err := d.Service.RemoveAppointment(ctx, d.On)
		if err != nil {
			return err
		}
		if !ok {
			return app.ErrNotFound
		}
	} else if err := d.Service.Manager().Delete(ctx, d.Index); err != nil {
		return fmt.Errorf("%w: %d", err, d.Index)
	}
	return list(d.Service, false, false, d.Format)
}

// Complete marks an appointment completed by position, or by day when On is
// set.
type Complete struct {
	Service *app.Service
	Index   int
	On      time.Time
	Format  string
}

func (c *Complete) Do(ctx context.Context) error {
	if c.Service == nil {
		return errNoService
	}
	if !c.On.IsZero() {
		ok, err := c.Service.CompleteAppointment(ctx, c.On)
		if err != nil {
			return err
		}
		if !ok {
			return app.ErrNotFound
		}
	} else if err := c.Service.Manager().Complete(ctx, c.Index); err != nil {
		return fmt.Errorf("%w: %d", err, c.Index)
	}
	return list(c.Service, false, false, c.Format)
}

// Export writes appointments as an iCalendar file. An empty Path or "-"
// writes to Out.
type Export struct {
	Service *app.Service
	Path    string
	Pending bool
	Out     io.Writer
	Now     func() time.Time
}

func (e *Export) Do(_ context.Context) error {
	if e.Service == nil {
		return errNoService
	}
	items := e.Service.Appointments.List()
	if e.Pending {
		items = e.Service.Appointments.ListPending()
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	if e.Path == "" || e.Path == "-" {
		w := e.Out
		if w == nil {
			w = os.Stdout
		}
		return export.WriteICS(w, items, now())
	}

	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}
	if err := export.WriteICS(f, items, now()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "%d citas exportadas a %s\n", len(items), e.Path)
	return nil
}

// Import merges appointments from an iCalendar file by day.
type Import struct {
	Service *app.Service
	Path    string
	In      io.Reader
}

func (i *Import) Do(ctx context.Context) error {
	if i.Service == nil {
		return errNoService
	}
	r := i.In
	if i.Path != "" && i.Path != "-" {
		f, err := os.Open(i.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}

	items, err := export.ReadICS(r)
	if err != nil {
		return err
	}
	n, err := i.Service.Import(ctx, items)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "%d citas importadas\n", n)
	return nil
}
