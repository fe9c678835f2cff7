package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/logging"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/store"
	"tableflip.dev/allergy/pkg/view"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotLoaded     = errors.New("app: data not loaded")
)

// Service provides high-level operations over day records and appointments.
// It wraps persistence and the two stores so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence

	Records      *record.Store
	Appointments *appointment.Store

	// Now is the clock used for defaults; time.Now when nil.
	Now func() time.Time

	// ready flips once Load finished. Writes before that are skipped so an
	// empty in-memory store never overwrites what is on disk.
	ready bool
}

// New returns a Service with empty stores. Call Load before mutating.
func New(p store.Persistence) *Service {
	return &Service{
		Persistence:  p,
		Records:      record.NewStore(nil),
		Appointments: appointment.NewStore(nil),
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Load reads both collections once. Unreadable data is logged and replaced by
// an empty collection.
func (s *Service) Load(_ context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	recs, err := s.Persistence.LoadRecords()
	if err != nil {
		logging.Warn("discarding unreadable day records", "key", store.KeyDayRecords, "err", err)
	}
	s.Records = record.NewStore(recs)

	apps, err := s.Persistence.LoadAppointments()
	if err != nil {
		logging.Warn("discarding unreadable appointments", "key", store.KeyAppointments, "err", err)
	}
	s.Appointments = appointment.NewStore(apps)
	if s.Appointments.Len() != len(apps) {
		logging.Info("collapsed appointments sharing a day", "loaded", len(apps), "kept", s.Appointments.Len())
	}

	s.ready = true
	logging.Debug("loaded", "records", s.Records.Len(), "appointments", s.Appointments.Len())
	return nil
}

// Ready reports whether Load has completed.
func (s *Service) Ready() bool {
	return s.ready
}

func (s *Service) persistRecords() error {
	if !s.ready {
		return nil
	}
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveRecords(s.Records.All())
}

func (s *Service) persistAppointments() error {
	if !s.ready {
		return nil
	}
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	return s.Persistence.SaveAppointments(s.Appointments.List())
}

// Day returns the record for t's day.
func (s *Service) Day(t time.Time) (record.DayRecord, bool) {
	return s.Records.Get(t)
}

// SaveDay upserts the record for t's day and persists the collection.
func (s *Service) SaveDay(_ context.Context, t time.Time, level record.Level, meds []record.Medication) error {
	s.Records.Upsert(t, level, meds)
	return s.persistRecords()
}

// UpsertAppointment sets the appointment for t's day.
func (s *Service) UpsertAppointment(_ context.Context, t time.Time, description string) (appointment.Appointment, error) {
	a := s.Appointments.Upsert(t, description)
	return a, s.persistAppointments()
}

// CompleteAppointment completes the appointment on t's day, if any.
func (s *Service) CompleteAppointment(_ context.Context, t time.Time) (bool, error) {
	if !s.Appointments.Complete(t) {
		return false, nil
	}
	return true, s.persistAppointments()
}

// RemoveAppointment deletes the appointment on t's day, if any.
func (s *Service) RemoveAppointment(_ context.Context, t time.Time) (bool, error) {
	if !s.Appointments.Remove(t) {
		return false, nil
	}
	return true, s.persistAppointments()
}

// Import merges appointments read from elsewhere. Each one is upserted by day
// and completed when it arrives completed. It returns how many were applied.
func (s *Service) Import(_ context.Context, items []appointment.Appointment) (int, error) {
	n := 0
	for _, a := range items {
		if a.Date.IsZero() || a.Description == "" {
			continue
		}
		s.Appointments.Upsert(a.Date.Time, a.Description)
		if !a.Pending() {
			s.Appointments.Complete(a.Date.Time)
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return n, s.persistAppointments()
}

// Appointment returns the appointment on t's day.
func (s *Service) Appointment(t time.Time) (appointment.Appointment, bool) {
	return s.Appointments.FindByDay(t)
}

// Cell is everything known about one calendar day.
type Cell struct {
	Date        time.Time                `json:"date" yaml:"date"`
	HasRecord   bool                     `json:"recorded" yaml:"recorded"`
	Level       record.Level             `json:"symptomLevel" yaml:"symptomLevel"`
	Medications []record.Medication      `json:"medications" yaml:"medications"`
	Appointment *appointment.Appointment `json:"appointment,omitempty" yaml:"appointment,omitempty"`
}

// PendingAppointment reports whether the cell shows an open appointment.
func (c Cell) PendingAppointment() bool {
	return c.Appointment != nil && c.Appointment.Pending()
}

// CellFor gathers the record and appointment for t's day.
func (s *Service) CellFor(t time.Time) Cell {
	c := Cell{Date: day.Start(t)}
	if r, ok := s.Records.Get(t); ok {
		c.HasRecord = true
		c.Level = r.Level
		c.Medications = r.Medications
	}
	if a, ok := s.Appointments.FindByDay(t); ok {
		c.Appointment = &a
	}
	return c
}

// Month walks every day of the month, calling fn once per day in order.
func (s *Service) Month(year int, month time.Month, fn func(Cell)) {
	for d := 1; d <= day.DaysIn(year, month); d++ {
		fn(s.CellFor(day.Date(year, month, d)))
	}
}

// Tabs returns the month tabs for the given season plus every month with data.
func (s *Service) Tabs(season []time.Month) []view.Tab {
	var days []time.Time
	for _, r := range s.Records.All() {
		days = append(days, r.Date.Time)
	}
	for _, a := range s.Appointments.List() {
		days = append(days, a.Date.Time)
	}
	return view.Tabs(season, s.now(), days...)
}

// View builds a fresh selection state over the current tabs.
func (s *Service) View(season []time.Month) *view.State {
	return view.New(s.Tabs(season), s.now())
}
