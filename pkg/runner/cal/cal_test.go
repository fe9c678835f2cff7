package cal

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/printers"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/store"
	"tableflip.dev/allergy/pkg/view"
)

var (
	season = []time.Month{time.April, time.May, time.June}
	now    = func() time.Time { return day.Date(2025, time.May, 10).Add(9 * time.Hour) }
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p)
	svc.Now = now
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc
}

func TestMonths(t *testing.T) {
	svc := newService(t)
	if err := svc.SaveDay(context.Background(), day.Date(2024, time.January, 20), record.Clear, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := map[string]struct {
		cal  Cal
		want []view.Tab
	}{
		"opening tab": {
			want: []view.Tab{{Year: 2025, Month: time.May}},
		},
		"month of the current year": {
			cal:  Cal{Month: time.August},
			want: []view.Tab{{Year: 2025, Month: time.August}},
		},
		"all tabs": {
			cal: Cal{All: true},
			want: []view.Tab{
				{Year: 2025, Month: time.April},
				{Year: 2025, Month: time.May},
				{Year: 2025, Month: time.June},
			},
		},
		"all tabs of a past year": {
			cal:  Cal{All: true, Year: 2024},
			want: []view.Tab{{Year: 2024, Month: time.January}},
		},
		"known year": {
			cal:  Cal{Year: 2024},
			want: []view.Tab{{Year: 2024, Month: time.January}},
		},
		"unknown year keeps the month": {
			cal:  Cal{Year: 2023},
			want: []view.Tab{{Year: 2023, Month: time.May}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := tc.cal
			c.Service, c.Season, c.Now = svc, season, now
			got := c.Months()
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestDoStructured(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	if err := svc.SaveDay(ctx, day.Date(2025, time.May, 2), record.Mild, []record.Medication{record.Bilaxten}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.UpsertAppointment(ctx, day.Date(2025, time.May, 20), "Alergólogo"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	c := &Cal{Service: svc, Season: season, Now: now, Format: printers.FormatJSON}
	if err := c.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}

	var out []struct {
		Year  int        `json:"year"`
		Month string     `json:"month"`
		Cells []app.Cell `json:"days"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(out) != 1 || out[0].Year != 2025 || out[0].Month != "mayo" {
		t.Fatalf("unexpected months %+v", out)
	}
	if len(out[0].Cells) != 2 {
		t.Fatalf("only days with data are listed, got %d", len(out[0].Cells))
	}
	if out[0].Cells[0].Level != record.Mild || out[0].Cells[1].Appointment == nil {
		t.Fatalf("unexpected cells %+v", out[0].Cells)
	}
}

func TestDoPrettyLegend(t *testing.T) {
	svc := newService(t)
	if err := svc.SaveDay(context.Background(), day.Date(2025, time.May, 2), record.Mild, []record.Medication{record.Relvar}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var buf bytes.Buffer
	prevOut, prevNo := color.Output, color.NoColor
	color.Output, color.NoColor = &buf, true
	defer func() { color.Output, color.NoColor = prevOut, prevNo }()

	if err := (&Cal{Service: svc, Season: season, Now: now}).Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "mayo 2025") {
		t.Fatalf("missing month title:\n%s", got)
	}
	if !strings.Contains(got, "R=Relvar") {
		t.Fatalf("missing legend:\n%s", got)
	}
}
