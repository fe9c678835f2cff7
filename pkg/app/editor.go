package app

import (
	"context"
	"strings"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/record"
)

// EditorState tracks the day editor's lifecycle.
type EditorState int

const (
	Idle EditorState = iota
	Editing
	Saved
)

func (s EditorState) String() string {
	switch s {
	case Editing:
		return "editing"
	case Saved:
		return "saved"
	default:
		return "idle"
	}
}

// Editor edits one day's record together with its appointment. Form state is
// local until Save; Cancel drops it.
type Editor struct {
	svc   *Service
	date  time.Time
	state EditorState

	level record.Level
	meds  []record.Medication
	text  string
}

// OpenDay starts editing t's day, seeded from what is stored.
func (s *Service) OpenDay(t time.Time) *Editor {
	e := &Editor{svc: s, date: t}
	e.seed()
	return e
}

func (e *Editor) seed() {
	e.level = record.Unset
	e.meds = nil
	e.text = ""
	if r, ok := e.svc.Records.Get(e.date); ok {
		e.level = r.Level
		e.meds = r.Medications
	}
	if a, ok := e.svc.Appointments.FindByDay(e.date); ok {
		e.text = a.Description
	}
	e.state = Editing
}

func (e *Editor) Date() time.Time         { return e.date }
func (e *Editor) State() EditorState      { return e.state }
func (e *Editor) Level() record.Level     { return e.level }
func (e *Editor) AppointmentText() string { return e.text }
func (e *Editor) Medications() []record.Medication {
	return append([]record.Medication(nil), e.meds...)
}

// Appointment returns the stored appointment for the day, if any.
func (e *Editor) Appointment() (appointment.Appointment, bool) {
	return e.svc.Appointments.FindByDay(e.date)
}

func (e *Editor) touch() {
	if e.state != Editing {
		e.state = Editing
	}
}

func (e *Editor) SetLevel(l record.Level) {
	e.touch()
	e.level = l
}

func (e *Editor) ClearLevel() {
	e.SetLevel(record.Unset)
}

func (e *Editor) ToggleMedication(m record.Medication) {
	e.touch()
	e.meds = record.Toggle(e.meds, m)
}

func (e *Editor) SetAppointmentText(v string) {
	e.touch()
	e.text = v
}

// Save always writes the day record. The appointment is upserted only when
// its text is not blank; a blank text never deletes it.
func (e *Editor) Save(ctx context.Context) error {
	if err := e.svc.SaveDay(ctx, e.date, e.level, e.meds); err != nil {
		return err
	}
	if desc := strings.TrimSpace(e.text); desc != "" {
		if _, err := e.svc.UpsertAppointment(ctx, e.date, desc); err != nil {
			return err
		}
	}
	e.state = Saved
	return nil
}

// CompleteAppointment marks the day's appointment completed. The day record is
// untouched.
func (e *Editor) CompleteAppointment(ctx context.Context) error {
	_, err := e.svc.CompleteAppointment(ctx, e.date)
	return err
}

// RemoveAppointment deletes the day's appointment and clears the text field.
func (e *Editor) RemoveAppointment(ctx context.Context) error {
	if _, err := e.svc.RemoveAppointment(ctx, e.date); err != nil {
		return err
	}
	e.text = ""
	return nil
}

// Cancel discards unsaved changes.
func (e *Editor) Cancel() {
	e.seed()
	e.state = Idle
}
