package record

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/allergy/pkg/day"
)

func TestGetMatchesByCalendarDay(t *testing.T) {
	s := NewStore(nil)
	morning := time.Date(2025, time.April, 10, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.April, 10, 21, 15, 0, 0, time.Local)

	s.Upsert(morning, Mild, []Medication{Bilaxten})

	a, ok := s.Get(morning)
	if !ok {
		t.Fatalf("expected record for %v", morning)
	}
	b, ok := s.Get(evening)
	if !ok {
		t.Fatalf("expected record for %v", evening)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical records, got %+v and %+v", a, b)
	}
	if _, ok := s.Get(morning.AddDate(0, 0, 1)); ok {
		t.Fatalf("did not expect a record for the next day")
	}
}

func TestUpsertReplacesSameDay(t *testing.T) {
	s := NewStore(nil)
	d := day.Date(2025, time.April, 10)

	s.Upsert(d, Mild, []Medication{Bilaxten})
	s.Upsert(d.Add(5*time.Hour), Mild, []Medication{Bilaxten, Ventolin})

	if s.Len() != 1 {
		t.Fatalf("expected one record, got %d", s.Len())
	}
	got, _ := s.Get(d)
	if got.Level != Mild {
		t.Fatalf("expected yellow level, got %v", got.Level)
	}
	if !reflect.DeepEqual(got.Medications, []Medication{Bilaxten, Ventolin}) {
		t.Fatalf("unexpected medications %v", got.Medications)
	}
}

func TestUpsertClearingKeepsRecord(t *testing.T) {
	s := NewStore(nil)
	d := day.Date(2025, time.May, 2)
	s.Upsert(d, Severe, []Medication{Relvar})
	s.Upsert(d, Unset, nil)

	got, ok := s.Get(d)
	if !ok {
		t.Fatalf("clearing must keep the record")
	}
	if !got.Empty() {
		t.Fatalf("expected empty record, got %+v", got)
	}
}

func TestUpsertNormalizesMedications(t *testing.T) {
	s := NewStore(nil)
	d := day.Date(2025, time.May, 3)
	s.Upsert(d, Clear, []Medication{Dymista, "Aspirina", Dymista, Relvar})
	got, _ := s.Get(d)
	if !reflect.DeepEqual(got.Medications, []Medication{Dymista, Relvar}) {
		t.Fatalf("unexpected medications %v", got.Medications)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	d := day.Date(2025, time.May, 4)
	s.Upsert(d, Clear, []Medication{Relvar})
	got, _ := s.Get(d)
	got.Medications[0] = Dymista
	again, _ := s.Get(d)
	if again.Medications[0] != Relvar {
		t.Fatalf("store leaked its internal slice")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := NewStore(nil)
	s.Upsert(day.Date(2025, time.April, 10), Mild, []Medication{Bilaxten})
	s.Upsert(day.Date(2025, time.April, 11), Unset, nil)
	s.Upsert(day.Date(2025, time.April, 12), Severe, []Medication{Ventolin, Relvar})

	b, err := json.Marshal(s.All())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var loaded []DayRecord
	if err := json.Unmarshal(b, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	reloaded := NewStore(loaded).All()
	want := s.All()
	if len(reloaded) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(reloaded))
	}
	for i := range want {
		if !want[i].Date.Equal(reloaded[i].Date.Time) ||
			want[i].Level != reloaded[i].Level ||
			!reflect.DeepEqual(want[i].Medications, reloaded[i].Medications) {
			t.Fatalf("record %d differs: %+v vs %+v", i, want[i], reloaded[i])
		}
	}
}

func TestLevelJSON(t *testing.T) {
	var recs []DayRecord
	in := `[{"date":"2025-04-10T10:00:00.000Z","symptomLevel":"orange","medications":["Relvar"]},
	{"date":"2025-04-11T10:00:00.000Z","symptomLevel":null,"medications":[]},
	{"date":"2025-04-12T10:00:00.000Z","symptomLevel":"purple","medications":[]}]`
	if err := json.Unmarshal([]byte(in), &recs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if recs[0].Level != Moderate {
		t.Fatalf("expected orange, got %v", recs[0].Level)
	}
	if recs[1].Level != Unset || recs[2].Level != Unset {
		t.Fatalf("null and unknown tags decode as unset")
	}
	b, err := json.Marshal(recs[1])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"date":"2025-04-11T10:00:00.000Z","symptomLevel":null,"medications":[]}`; string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"yellow": Mild, "ROJO": Severe, "3": Moderate, "": Unset} {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseLevel("purple"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestToggle(t *testing.T) {
	meds := Toggle(nil, Relvar)
	meds = Toggle(meds, Bilaxten)
	meds = Toggle(meds, Relvar)
	if !reflect.DeepEqual(meds, []Medication{Bilaxten}) {
		t.Fatalf("unexpected %v", meds)
	}
}

func TestUpsertIgnoresZeroDay(t *testing.T) {
	s := NewStore(nil)
	s.Upsert(time.Time{}, Mild, []Medication{Bilaxten})
	s.Upsert(time.Time{}, Severe, nil)
	if s.Len() != 0 {
		t.Fatalf("expected no records, got %d", s.Len())
	}
}
