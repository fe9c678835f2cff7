package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

func load(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p, base
}

func TestLoadMissingKeysIsEmpty(t *testing.T) {
	p, _ := load(t)
	recs, err := p.LoadRecords()
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
	apps, err := p.LoadAppointments()
	if err != nil {
		t.Fatalf("load appointments: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected no appointments, got %d", len(apps))
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	p, base := load(t)
	s := record.NewStore(nil)
	s.Upsert(day.Date(2025, time.April, 10), record.Mild, []record.Medication{record.Bilaxten})
	s.Upsert(day.Date(2025, time.April, 11), record.Unset, nil)

	if err := p.SaveRecords(s.All()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, KeyDayRecords)); err != nil {
		t.Fatalf("expected %s on disk: %v", KeyDayRecords, err)
	}

	// A fresh handle must not be served from the first one's cache.
	p2, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := p2.LoadRecords()
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Level != record.Mild || !got[0].Date.SameDay(day.Date(2025, time.April, 10)) {
		t.Fatalf("unexpected first record %+v", got[0])
	}
	if got[1].Level != record.Unset || len(got[1].Medications) != 0 {
		t.Fatalf("unexpected second record %+v", got[1])
	}
}

func TestAppointmentsRoundTrip(t *testing.T) {
	p, _ := load(t)
	s := appointment.NewStore(nil)
	s.Upsert(day.Date(2025, time.May, 2), "Alergólogo")
	s.Upsert(day.Date(2025, time.May, 3), "Análisis")
	s.Complete(day.Date(2025, time.May, 3))

	if err := p.SaveAppointments(s.List()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.LoadAppointments()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := s.List()
	if len(got) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Status != want[i].Status || got[i].Description != want[i].Description {
			t.Fatalf("appointment %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestCorruptDataRecoversEmpty(t *testing.T) {
	p, base := load(t)
	if err := os.WriteFile(filepath.Join(base, KeyAppointments), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.LoadAppointments()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

func TestRawKeys(t *testing.T) {
	p, _ := load(t)
	if _, ok := p.Get(KeyTheme); ok {
		t.Fatalf("expected no theme yet")
	}
	if err := p.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := p.Get(KeyTheme); !ok || v != "dark" {
		t.Fatalf("expected dark, got %q", v)
	}
	if keys := p.Keys(); len(keys) != 1 || keys[0] != KeyTheme {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestStaticConfigSeason(t *testing.T) {
	got := StaticConfig{}.Season()
	if len(got) != 5 || got[0] != time.April || got[4] != time.August {
		t.Fatalf("unexpected default season %v", got)
	}
	if got := (StaticConfig{Months: []int{0, 3, 13}}).Season(); len(got) != 1 || got[0] != time.March {
		t.Fatalf("expected invalid months dropped, got %v", got)
	}
}
