package tui

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/termenv"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/export"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/store"
	"tableflip.dev/allergy/pkg/theme"
)

var may10 = day.Date(2025, time.May, 10)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestModel(t *testing.T, ex *export.Exporter) (*Model, store.Persistence) {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p)
	svc.Now = func() time.Time { return may10.Add(9 * time.Hour) }
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	ts := theme.New(theme.Options{Storage: p, PrefersDark: func() bool { return true }})
	ts.Init()
	m := New(context.Background(), Options{
		Service:  svc,
		Theme:    ts,
		Exporter: ex,
		Season:   []time.Month{time.April, time.May, time.June},
	})
	return m, p
}

// press feeds keys to the model. Named keys map to their key types; anything
// else is typed as runes.
func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+u":
			msg = tea.KeyMsg{Type: tea.KeyCtrlU}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

func TestEditorSavesDay(t *testing.T) {
	m, p := newTestModel(t, nil)

	press(m, "enter")
	if m.mode() != modeEditor {
		t.Fatalf("mode = %v, want editor", m.mode())
	}
	press(m, "2", "b", "v", "v", "i", "alergólogo", "enter")
	if m.mode() != modeCalendar {
		t.Fatalf("editor still open after save")
	}

	r, ok := m.svc.Day(may10)
	if !ok || r.Level != record.Mild {
		t.Fatalf("record = %+v, %v", r, ok)
	}
	if len(r.Medications) != 1 || r.Medications[0] != record.Bilaxten {
		t.Fatalf("medications = %v", r.Medications)
	}
	a, ok := m.svc.Appointment(may10)
	if !ok || a.Description != "alergólogo" || !a.Pending() {
		t.Fatalf("appointment = %+v, %v", a, ok)
	}

	// A fresh service over the same storage sees the save.
	again := app.New(p)
	if err := again.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if r, ok := again.Day(may10); !ok || r.Level != record.Mild {
		t.Fatalf("reloaded record = %+v, %v", r, ok)
	}
}

func TestEditorCancelDiscards(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "enter", "4", "d", "esc")
	if m.mode() != modeCalendar {
		t.Fatalf("editor still open after cancel")
	}
	if _, ok := m.svc.Day(may10); ok {
		t.Fatalf("cancel stored a record")
	}
}

func TestEditorBlankTextKeepsAppointment(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if _, err := m.svc.UpsertAppointment(context.Background(), may10, "revisión"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	press(m, "enter", "i", "ctrl+u", "esc", "1", "s")
	if a, ok := m.svc.Appointment(may10); !ok || a.Description != "revisión" {
		t.Fatalf("blank text changed appointment: %+v, %v", a, ok)
	}

	press(m, "enter", "c", "esc")
	if a, _ := m.svc.Appointment(may10); a.Pending() {
		t.Fatalf("appointment not completed")
	}

	press(m, "enter", "x", "esc")
	if _, ok := m.svc.Appointment(may10); ok {
		t.Fatalf("appointment not removed")
	}
}

func TestNavigationStaysInTab(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "down", "down", "down")
	if got := m.view.Selected(); !day.Equal(got, day.Date(2025, time.May, 31)) {
		t.Fatalf("selected = %v", got)
	}
	press(m, "down")
	if got := m.view.Selected(); !day.Equal(got, day.Date(2025, time.May, 31)) {
		t.Fatalf("selection left the month: %v", got)
	}

	press(m, "tab")
	if m.view.Tab().Month != time.June {
		t.Fatalf("tab = %v", m.view.Tab())
	}
	press(m, "right")
	if got := m.view.Selected(); !day.Equal(got, day.Date(2025, time.June, 1)) {
		t.Fatalf("selection outside tab should land on the first: %v", got)
	}
	press(m, "l")
	if got := m.view.Selected(); !day.Equal(got, day.Date(2025, time.June, 2)) {
		t.Fatalf("selected = %v", got)
	}
}

func TestManagerFlow(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "a", "n")
	if !m.formOpen {
		t.Fatalf("form not open")
	}
	if got := m.formDate.Value(); got != "2025-05-10" {
		t.Fatalf("date seed = %q", got)
	}

	// Without a description the form is declined silently.
	press(m, "enter")
	if !m.formOpen || m.status != "" || len(m.manager.List()) != 0 {
		t.Fatalf("incomplete form was not ignored: open=%v status=%q", m.formOpen, m.status)
	}

	press(m, "tab", "revisión anual", "enter")
	if m.formOpen {
		t.Fatalf("form still open after add")
	}
	list := m.manager.List()
	if len(list) != 1 || list[0].Description != "revisión anual" {
		t.Fatalf("list = %+v", list)
	}

	press(m, "e", "tab", "ctrl+u", "cambio", "enter")
	if got := m.manager.List()[0].Description; got != "cambio" {
		t.Fatalf("edit = %q", got)
	}

	press(m, "c")
	if m.manager.List()[0].Pending() {
		t.Fatalf("not completed")
	}

	// Completed appointments stay as they were.
	press(m, "e")
	if m.formOpen || m.status != "cita completada" {
		t.Fatalf("completed entry opened for editing: open=%v status=%q", m.formOpen, m.status)
	}

	press(m, "x")
	if len(m.manager.List()) != 0 {
		t.Fatalf("not deleted")
	}
	press(m, "esc")
	if m.mode() != modeCalendar {
		t.Fatalf("manager still open")
	}
}

func TestManagerAddsMonthTab(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "a", "n", "ctrl+u", "2025-11-03", "tab", "vacuna", "enter", "esc")
	found := false
	for _, mo := range m.view.MonthsIn(2025) {
		if mo == time.November {
			found = true
		}
	}
	if !found {
		t.Fatalf("november not offered: %v", m.view.MonthsIn(2025))
	}
	if m.view.Tab().Month != time.May {
		t.Fatalf("active tab moved to %v", m.view.Tab())
	}
}

func TestThemeToggleIsStored(t *testing.T) {
	m, p := newTestModel(t, nil)

	press(m, "t")
	if m.theme.Current() != theme.Light {
		t.Fatalf("theme = %v", m.theme.Current())
	}
	if v, ok := p.Get(theme.StorageKey); !ok || v != "light" {
		t.Fatalf("stored theme = %q, %v", v, ok)
	}
}

func TestViewShowsMonth(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if err := m.svc.SaveDay(context.Background(), may10, record.Severe, []record.Medication{record.Relvar}); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := m.View()
	for _, want := range []string{"mayo 2025", "abril", "junio", "lu", "do", "10 R", "síntomas graves"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}

	press(m, "enter")
	out = m.View()
	if !strings.Contains(out, "sin síntomas") || !strings.Contains(out, "[x] Relvar") {
		t.Fatalf("editor view:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 160 {
			t.Fatalf("line too wide (%d): %q", w, line)
		}
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

func TestExportWritesImage(t *testing.T) {
	dir := t.TempDir()
	img := testPNG(t)
	var page []byte
	ex := &export.Exporter{
		Dir: dir,
		Capture: func(_ context.Context, p []byte) ([]byte, error) {
			page = p
			return img, nil
		},
	}
	m, _ := newTestModel(t, ex)
	if err := m.svc.SaveDay(context.Background(), may10, record.Mild, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	cmd := press(m, "e")
	if cmd == nil || !m.exporting {
		t.Fatalf("export did not start")
	}
	m.Update(cmd())
	if m.exporting {
		t.Fatalf("export still running")
	}
	if !strings.Contains(m.status, export.FileName(time.May)) {
		t.Fatalf("status = %q", m.status)
	}
	if _, err := os.Stat(dir + "/" + export.FileName(time.May)); err != nil {
		t.Fatalf("image: %v", err)
	}
	if !bytes.Contains(page, []byte(`data-ready="true"`)) {
		t.Fatalf("page not rendered")
	}
}
