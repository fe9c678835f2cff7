package options

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/record"
)

func TestParseMonth(t *testing.T) {
	cases := map[string]time.Month{
		"5":     time.May,
		"mayo":  time.May,
		"May":   time.May,
		"sep":   time.September,
		"agost": time.August,
		"":      0,
	}
	for in, want := range cases {
		got, err := ParseMonth(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	for _, in := range []string{"13", "ma", "foo"} {
		if _, err := ParseMonth(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestRecordOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "set"}
	o := &RecordOptions{}
	AddRecordArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--level", "naranja", "--med", "B,ventolin", "-t", "D"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	l, err := o.GetLevel(cmd)
	if err != nil || l == nil || *l != record.Moderate {
		t.Fatalf("unexpected level %v %v", l, err)
	}
	meds, set, err := o.GetMedications(cmd)
	if err != nil || !set || len(meds) != 2 || meds[0] != record.Bilaxten || meds[1] != record.Ventolin {
		t.Fatalf("unexpected medications %v %v %v", meds, set, err)
	}
	toggle, err := o.GetToggle()
	if err != nil || len(toggle) != 1 || toggle[0] != record.Dymista {
		t.Fatalf("unexpected toggle %v %v", toggle, err)
	}

	o.Medications = []string{"aspirina"}
	if _, _, err := o.GetMedications(cmd); err == nil {
		t.Fatalf("expected error for unknown medication")
	}
}

func TestLevelUnsetWhenFlagMissing(t *testing.T) {
	cmd := &cobra.Command{Use: "set"}
	o := &RecordOptions{}
	AddRecordArgs(cmd, o)
	if l, err := o.GetLevel(cmd); l != nil || err != nil {
		t.Fatalf("expected nil level, got %v %v", l, err)
	}
}

func TestOutputFormat(t *testing.T) {
	o := &OutputOptions{Output: "YAML"}
	if o.Format() != "yaml" {
		t.Fatalf("unexpected format %q", o.Format())
	}
	o.JSON = true
	if o.Format() != "json" {
		t.Fatalf("--json should win, got %q", o.Format())
	}
	if err := (&OutputOptions{Output: "xml"}).Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("uno   dos tres cuatro", 8)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 8 {
			t.Fatalf("line too long: %q", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "uno dos tres cuatro" {
		t.Fatalf("words changed: %q", got)
	}
}

func TestParseIndex(t *testing.T) {
	if i, err := ParseIndex("2"); err != nil || i != 2 {
		t.Fatalf("unexpected %d %v", i, err)
	}
	if _, err := ParseIndex("-1"); err == nil {
		t.Fatalf("expected error")
	}
}
