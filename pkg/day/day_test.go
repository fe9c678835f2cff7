package day

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEqualIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.April, 10, 0, 30, 0, 0, time.Local)
	night := time.Date(2025, time.April, 10, 23, 59, 0, 0, time.Local)
	if !Equal(morning, night) {
		t.Fatalf("expected %v and %v to be the same day", morning, night)
	}
	if Equal(morning, night.AddDate(0, 0, 1)) {
		t.Fatalf("expected different days to differ")
	}
	if Equal(time.Time{}, time.Time{}) {
		t.Fatalf("zero times are never a calendar day")
	}
}

func TestEqualAcrossZones(t *testing.T) {
	local := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.Local)
	if !Equal(local, local.UTC()) {
		t.Fatalf("same instant in another zone must be the same day")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	in := On(time.Date(2025, time.April, 10, 18, 4, 5, 0, time.Local))
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Timestamp
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if !out.Equal(in.Time) {
		t.Fatalf("expected %v, got %v", in.Time, out.Time)
	}
	if !out.SameDay(in.Time) {
		t.Fatalf("expected same day after round trip")
	}
}

func TestTimestampAcceptsBareDates(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2025-04-10"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ts.SameDay(Date(2025, time.April, 10)) {
		t.Fatalf("unexpected day %v", ts.Time)
	}
}

func TestParse(t *testing.T) {
	now := time.Date(2025, time.June, 3, 15, 0, 0, 0, time.Local)
	tests := map[string]time.Time{
		"2025-04-10": Date(2025, time.April, 10),
		"2025-4-9":   Date(2025, time.April, 9),
		"4/10":       Date(2025, time.April, 10),
		"today":      Date(2025, time.June, 3),
		"Yesterday":  Date(2025, time.June, 2),
		"tomorrow":   Date(2025, time.June, 4),
	}
	for in, want := range tests {
		got, err := Parse(in, now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
	}
	if _, err := Parse("someday", now); err == nil {
		t.Fatalf("expected error for unknown date")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysIn(2025, time.April); got != 30 {
		t.Fatalf("expected 30 days in April, got %d", got)
	}
}

func TestLocale(t *testing.T) {
	if got := MonthName(time.May); got != "mayo" {
		t.Fatalf("unexpected month name %q", got)
	}
	if got := MonthName(0); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
	if got := Long(Date(2025, time.May, 3).Add(20 * time.Hour)); got != "3 de mayo, 2025" {
		t.Fatalf("unexpected long date %q", got)
	}
	// 2025-06-01 is a Sunday, 2025-06-02 a Monday.
	if got := Column(Date(2025, time.June, 1)); got != 6 {
		t.Fatalf("expected Sunday in column 6, got %d", got)
	}
	if got := Column(Date(2025, time.June, 2)); got != 0 {
		t.Fatalf("expected Monday in column 0, got %d", got)
	}
}
