package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
)

var (
	// ErrIncomplete rejects a form without both a date and a description.
	ErrIncomplete = errors.New("app: date and description required")
	ErrNotFound   = errors.New("app: appointment not found")
	ErrNotEditing = errors.New("app: no appointment being edited")
	ErrCompleted  = errors.New("app: completed appointments can not be edited")
)

// Form is the appointment manager's unsaved input.
type Form struct {
	Date        time.Time
	Description string
}

func (f Form) complete() bool {
	return !f.Date.IsZero() && strings.TrimSpace(f.Description) != ""
}

// Manager is the list-and-form workflow over every appointment.
type Manager struct {
	svc     *Service
	editing int
	form    Form
}

// Manager opens the appointment manager.
func (s *Service) Manager() *Manager {
	return &Manager{svc: s, editing: -1}
}

// List returns every appointment; positions match the index arguments below.
func (m *Manager) List() []appointment.Appointment {
	return m.svc.Appointments.List()
}

func (m *Manager) Form() Form { return m.form }

func (m *Manager) SetDate(t time.Time)     { m.form.Date = t }
func (m *Manager) SetDescription(v string) { m.form.Description = v }
func (m *Manager) Editing() (int, bool)    { return m.editing, m.editing >= 0 }
func (m *Manager) persist() error          { return m.svc.persistAppointments() }
func (m *Manager) reset()                  { m.editing = -1; m.form = Form{} }

// Add stores the form as a new appointment, or overwrites the one already on
// that day.
func (m *Manager) Add(_ context.Context) error {
	if !m.form.complete() {
		return ErrIncomplete
	}
	m.svc.Appointments.Upsert(m.form.Date, strings.TrimSpace(m.form.Description))
	m.reset()
	return m.persist()
}

// Edit loads the pending appointment at position i into the form.
func (m *Manager) Edit(i int) error {
	a, ok := m.svc.Appointments.At(i)
	if !ok {
		return ErrNotFound
	}
	if !a.Pending() {
		return ErrCompleted
	}
	m.editing = i
	m.form = Form{Date: a.Date.Time, Description: a.Description}
	return nil
}

// Save writes the form back to the appointment being edited. Another
// appointment on the new day is replaced by the edited one.
func (m *Manager) Save(_ context.Context) error {
	if m.editing < 0 {
		return ErrNotEditing
	}
	if !m.form.complete() {
		return ErrIncomplete
	}
	if _, ok := m.svc.Appointments.ReplaceAt(m.editing, m.form.Date, strings.TrimSpace(m.form.Description)); !ok {
		m.reset()
		return ErrNotFound
	}
	m.reset()
	return m.persist()
}

// Delete removes the appointment at position i. Deleting the entry being
// edited resets the form.
func (m *Manager) Delete(_ context.Context, i int) error {
	if !m.svc.Appointments.RemoveAt(i) {
		return ErrNotFound
	}
	switch {
	case m.editing == i:
		m.reset()
	case m.editing > i:
		m.editing--
	}
	return m.persist()
}

// Complete marks the appointment at position i completed.
func (m *Manager) Complete(_ context.Context, i int) error {
	if !m.svc.Appointments.CompleteAt(i) {
		return ErrNotFound
	}
	return m.persist()
}

// Cancel drops the form.
func (m *Manager) Cancel() {
	m.reset()
}
