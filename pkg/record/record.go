// Package record holds per-day symptom and medication entries.
package record

import (
	"time"

	"tableflip.dev/allergy/pkg/day"
)

// DayRecord is what the user logged for one calendar day.
type DayRecord struct {
	Date        day.Timestamp `json:"date" yaml:"date"`
	Level       Level         `json:"symptomLevel" yaml:"symptomLevel"`
	Medications []Medication  `json:"medications" yaml:"medications"`
}

// Empty reports whether the record carries no level and no medications.
func (r DayRecord) Empty() bool {
	return r.Level == Unset && len(r.Medications) == 0
}

func (r DayRecord) clone() DayRecord {
	meds := make([]Medication, len(r.Medications))
	copy(meds, r.Medications)
	r.Medications = meds
	return r
}

// Store keeps at most one DayRecord per calendar day, in insertion order.
type Store struct {
	records []DayRecord
}

// NewStore seeds a store from a loaded collection. Later entries for a day
// already seen replace the earlier one.
func NewStore(records []DayRecord) *Store {
	s := &Store{}
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		s.Upsert(r.Date.Time, r.Level, r.Medications)
	}
	return s
}

func (s *Store) index(t time.Time) int {
	for i, r := range s.records {
		if r.Date.SameDay(t) {
			return i
		}
	}
	return -1
}

// Get returns the record for t's calendar day.
func (s *Store) Get(t time.Time) (DayRecord, bool) {
	if i := s.index(t); i >= 0 {
		return s.records[i].clone(), true
	}
	return DayRecord{}, false
}

// Upsert replaces the record for t's calendar day, or appends one. A zero t
// is ignored.
func (s *Store) Upsert(t time.Time, level Level, meds []Medication) {
	if t.IsZero() {
		return
	}
	r := DayRecord{
		Date:        day.On(t),
		Level:       level,
		Medications: Normalize(meds),
	}
	if i := s.index(t); i >= 0 {
		s.records[i] = r
		return
	}
	s.records = append(s.records, r)
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []DayRecord {
	out := make([]DayRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.clone()
	}
	return out
}

// InMonth returns the records that fall in the given month.
func (s *Store) InMonth(year int, month time.Month) []DayRecord {
	var out []DayRecord
	for _, r := range s.records {
		if day.SameMonth(r.Date.Time, year, month) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Between returns records whose day lies in [from, to].
func (s *Store) Between(from, to time.Time) []DayRecord {
	lo, hi := day.Start(from), day.Start(to)
	var out []DayRecord
	for _, r := range s.records {
		d := day.Start(r.Date.Time)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, r.clone())
	}
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}
