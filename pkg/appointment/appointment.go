// Package appointment keeps date-keyed reminders, at most one per calendar day.
package appointment

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/allergy/pkg/day"
)

// Status is the one-way lifecycle of an appointment. The stored values keep
// the original Spanish tags.
type Status string

const (
	Pending   Status = "pendiente"
	Completed Status = "completada"
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completada"
	default:
		return "pendiente"
	}
}

// Appointment is a reminder pinned to a calendar day.
type Appointment struct {
	ID          string        `json:"id" yaml:"id"`
	Date        day.Timestamp `json:"date" yaml:"date"`
	Description string        `json:"description" yaml:"description"`
	Status      Status        `json:"status" yaml:"status"`
}

// Pending reports whether the appointment is still open.
func (a Appointment) Pending() bool {
	return a.Status != Completed
}

// NewID generates an appointment identifier.
var NewID = func() string {
	return uuid.NewString()
}

// Store holds appointments in insertion order. No two share a calendar day.
type Store struct {
	items []Appointment
}

// NewStore seeds a store from a loaded collection. Older data may carry
// several appointments on one day; the later one wins and keeps the slot of
// the first.
func NewStore(items []Appointment) *Store {
	s := &Store{}
	for _, a := range items {
		if a.Date.IsZero() {
			continue
		}
		if a.ID == "" {
			a.ID = NewID()
		}
		if a.Status != Completed {
			a.Status = Pending
		}
		if i := s.index(a.Date.Time); i >= 0 {
			s.items[i] = a
			continue
		}
		s.items = append(s.items, a)
	}
	return s
}

func (s *Store) index(t time.Time) int {
	for i, a := range s.items {
		if a.Date.SameDay(t) {
			return i
		}
	}
	return -1
}

// Upsert sets the description for t's day. An existing appointment keeps its
// id and goes back to pending; otherwise a new pending one is appended. A zero
// t names no day and leaves the store untouched.
func (s *Store) Upsert(t time.Time, description string) Appointment {
	if t.IsZero() {
		return Appointment{}
	}
	if i := s.index(t); i >= 0 {
		s.items[i].Description = description
		s.items[i].Status = Pending
		return s.items[i]
	}
	a := Appointment{
		ID:          NewID(),
		Date:        day.On(t),
		Description: description,
		Status:      Pending,
	}
	s.items = append(s.items, a)
	return a
}

// Complete marks the appointment on t's day completed. It reports whether
// one was found.
func (s *Store) Complete(t time.Time) bool {
	i := s.index(t)
	if i < 0 {
		return false
	}
	s.items[i].Status = Completed
	return true
}

// Remove deletes the appointment on t's day. It reports whether one was found.
func (s *Store) Remove(t time.Time) bool {
	i := s.index(t)
	if i < 0 {
		return false
	}
	s.RemoveAt(i)
	return true
}

// FindByDay returns the appointment on t's day.
func (s *Store) FindByDay(t time.Time) (Appointment, bool) {
	if i := s.index(t); i >= 0 {
		return s.items[i], true
	}
	return Appointment{}, false
}

// ListPending returns open appointments in insertion order.
func (s *Store) ListPending() []Appointment {
	var out []Appointment
	for _, a := range s.items {
		if a.Pending() {
			out = append(out, a)
		}
	}
	return out
}

// List returns every appointment in insertion order.
func (s *Store) List() []Appointment {
	out := make([]Appointment, len(s.items))
	copy(out, s.items)
	return out
}

// Between returns appointments whose day lies in [from, to].
func (s *Store) Between(from, to time.Time) []Appointment {
	lo, hi := day.Start(from), day.Start(to)
	var out []Appointment
	for _, a := range s.items {
		d := day.Start(a.Date.Time)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// At returns the appointment at list position i.
func (s *Store) At(i int) (Appointment, bool) {
	if i < 0 || i >= len(s.items) {
		return Appointment{}, false
	}
	return s.items[i], true
}

// IndexOf returns the list position of the appointment with the given id.
func (s *Store) IndexOf(id string) int {
	for i, a := range s.items {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// ReplaceAt moves the appointment at position i to t's day with a new
// description. Any other appointment already on that day is dropped so the
// edited one takes its place. The returned index is i's new position, which
// shifts down when the dropped entry sat before it.
func (s *Store) ReplaceAt(i int, t time.Time, description string) (int, bool) {
	if i < 0 || i >= len(s.items) || t.IsZero() {
		return i, false
	}
	edited := s.items[i]
	edited.Date = day.On(t)
	edited.Description = description

	out := make([]Appointment, 0, len(s.items))
	pos := i
	for j, a := range s.items {
		switch {
		case j == i:
			pos = len(out)
			out = append(out, edited)
		case a.Date.SameDay(t):
			// Collision target, merged into the edited entry.
		default:
			out = append(out, a)
		}
	}
	s.items = out
	return pos, true
}

// RemoveAt deletes the appointment at position i.
func (s *Store) RemoveAt(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true
}

// CompleteAt marks the appointment at position i completed.
func (s *Store) CompleteAt(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items[i].Status = Completed
	return true
}
