package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/allergy/pkg/day"
)

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 {
		t.Fatalf("expected 7 days, got %d", days)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	days, label, err := ParseWindow("1w 10d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 17 {
		t.Fatalf("expected 17 days, got %d", days)
	}
	if label != "2w3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowSpanish(t *testing.T) {
	days, _, err := ParseWindow("2semanas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 14 {
		t.Fatalf("expected 14 days, got %d", days)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestRange(t *testing.T) {
	now := day.Date(2025, time.March, 2).Add(18 * time.Hour)
	since, until := Range(now, 7)
	if !day.Equal(until, now) {
		t.Fatalf("window should end today, got %v", until)
	}
	if want := day.Date(2025, time.February, 24); !since.Equal(want) {
		t.Fatalf("expected %v, got %v", want, since)
	}
}
