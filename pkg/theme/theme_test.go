package theme

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type memoryKV map[string]string

func (m memoryKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memoryKV) Set(key, value string) error {
	m[key] = value
	return nil
}

func fixedCookie(t *testing.T, now time.Time) *Cookie {
	t.Helper()
	c := NewCookie(t.TempDir())
	c.Now = func() time.Time { return now }
	return c
}

func never() bool  { return false }
func always() bool { return true }

func TestInitPrefersCookie(t *testing.T) {
	now := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	c := fixedCookie(t, now)
	if err := c.Write(Light); err != nil {
		t.Fatalf("write cookie: %v", err)
	}
	kv := memoryKV{StorageKey: "dark"}

	s := New(Options{Storage: kv, Cookie: c, PrefersDark: always})
	if got := s.Init(); got != Light {
		t.Fatalf("expected cookie value light, got %s", got)
	}
}

func TestInitFallsBackToStorageThenOS(t *testing.T) {
	now := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)

	s := New(Options{Storage: memoryKV{StorageKey: "light"}, Cookie: fixedCookie(t, now), PrefersDark: always})
	if got := s.Init(); got != Light {
		t.Fatalf("expected stored light, got %s", got)
	}

	s = New(Options{Storage: memoryKV{StorageKey: "sepia"}, Cookie: fixedCookie(t, now), PrefersDark: always})
	if got := s.Init(); got != Dark {
		t.Fatalf("expected OS dark, got %s", got)
	}

	s = New(Options{Storage: memoryKV{}, PrefersDark: never})
	if got := s.Init(); got != Light {
		t.Fatalf("expected OS light, got %s", got)
	}
}

func TestInitDoesNotPersist(t *testing.T) {
	kv := memoryKV{}
	c := fixedCookie(t, time.Now())
	s := New(Options{Storage: kv, Cookie: c, PrefersDark: always})
	s.Init()
	if _, ok := kv[StorageKey]; ok {
		t.Fatalf("init must not write storage")
	}
	if _, err := os.Stat(c.Path); err == nil {
		t.Fatalf("init must not write the cookie")
	}
}

func TestToggleAppliesSideEffects(t *testing.T) {
	now := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	kv := memoryKV{}
	c := fixedCookie(t, now)
	s := New(Options{Storage: kv, Cookie: c, PrefersDark: always})

	var applied []Theme
	s.OnApply(func(t Theme) { applied = append(applied, t) })
	s.Init()

	next, err := s.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if next != Light || s.Current() != Light {
		t.Fatalf("expected light after toggle, got %s", s.Current())
	}
	if kv[StorageKey] != "light" {
		t.Fatalf("expected storage to hold light, got %q", kv[StorageKey])
	}
	if got, ok := c.Read(); !ok || got != Light {
		t.Fatalf("expected cookie to hold light, got %q %v", got, ok)
	}
	if len(applied) != 2 || applied[0] != Dark || applied[1] != Light {
		t.Fatalf("unexpected apply calls %v", applied)
	}
}

func TestSetRejectsUnknown(t *testing.T) {
	s := New(Options{PrefersDark: never})
	if err := s.Set("sepia"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCookieExpiry(t *testing.T) {
	now := time.Date(2025, time.April, 10, 9, 0, 0, 0, time.UTC)
	c := fixedCookie(t, now)
	if err := c.Write(Dark); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(c.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "Max-Age=31536000") || !strings.HasPrefix(string(b), "theme=dark") {
		t.Fatalf("unexpected cookie %q", b)
	}

	c.Now = func() time.Time { return now.AddDate(2, 0, 0) }
	if _, ok := c.Read(); ok {
		t.Fatalf("expired cookie must be ignored")
	}
}

func TestCookieMalformed(t *testing.T) {
	c := fixedCookie(t, time.Now())
	if err := os.WriteFile(c.Path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := c.Read(); ok {
		t.Fatalf("malformed cookie must be ignored")
	}
}

func TestPaletteCoversLevels(t *testing.T) {
	for _, th := range []Theme{Light, Dark} {
		p := PaletteFor(th)
		for _, tag := range []string{"green", "yellow", "orange", "red"} {
			if p.Levels[tag] == "" {
				t.Fatalf("%s palette missing %s", th, tag)
			}
		}
	}
}

func TestTextOn(t *testing.T) {
	for _, tt := range []struct {
		bg   lipgloss.Color
		want lipgloss.Color
	}{
		{bg: "#ffffff", want: DarkText},
		{bg: "#fef08a", want: DarkText},
		{bg: "#111827", want: LightText},
		{bg: "#9f1239", want: LightText},
		{bg: "not-a-color", want: DarkText},
	} {
		if got := TextOn(tt.bg); got != tt.want {
			t.Errorf("TextOn(%s) = %s, want %s", tt.bg, got, tt.want)
		}
	}
}
