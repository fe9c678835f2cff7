// Package day models calendar days: dates identified by year, month and day
// independent of the time of day stored alongside them.
package day

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOLoose = "2006-1-2"
	layoutShort    = "1/2"

	// layoutInstant mirrors the millisecond precision ISO strings the stored
	// collections have always used.
	layoutInstant = "2006-01-02T15:04:05.000Z07:00"
)

// Equal reports whether a and b fall on the same calendar day in the local
// zone. Every lookup keyed by a day goes through this predicate.
func Equal(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether t falls in the given year and month.
func SameMonth(t time.Time, year int, month time.Month) bool {
	l := t.In(time.Local)
	return l.Year() == year && l.Month() == month
}

// Start returns midnight of t's calendar day in the local zone.
func Start(t time.Time) time.Time {
	l := t.In(time.Local)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// Date builds a local calendar day.
func Date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Key renders the calendar day as 2006-01-02.
func Key(t time.Time) string {
	return t.In(time.Local).Format(layoutISO)
}

// Parse reads a user supplied day relative to now.
func Parse(v string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	switch s {
	case "":
		return time.Time{}, fmt.Errorf("day: empty date")
	case "today", "hoy":
		return Start(now), nil
	case "yesterday", "ayer":
		return Start(now).AddDate(0, 0, -1), nil
	case "tomorrow", "mañana":
		return Start(now).AddDate(0, 0, 1), nil
	}
	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutISOLoose, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutShort, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("day: unrecognized date %q, want 2006-01-02 or 1/2", v)
	}
	// The short form carries no year, so it belongs to the current one.
	return Date(now.In(time.Local).Year(), t.Month(), t.Day()), nil
}

// Timestamp is a calendar day serialized as an ISO-8601 instant.
type Timestamp struct {
	time.Time
}

// On wraps t.
func On(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// SameDay reports whether then is on the same calendar day as t.
func (t Timestamp) SameDay(then time.Time) bool {
	return Equal(t.Time, then)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.String(), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseInstant(v)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutInstant)
}

// ParseInstant reads stored dates, which are usually full instants but may be
// bare days when typed by hand.
func ParseInstant(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISO, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("day: parse %q: %w", v, err)
	}
	return t, nil
}
