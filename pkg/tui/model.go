// Package tui is the interactive month calendar: tabs per month, a day
// editor and the appointment manager.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/export"
	"tableflip.dev/allergy/pkg/logging"
	"tableflip.dev/allergy/pkg/record"
	"tableflip.dev/allergy/pkg/theme"
	"tableflip.dev/allergy/pkg/view"
)

type mode int

const (
	modeCalendar mode = iota
	modeEditor
	modeManager
)

// Options configures a Model.
type Options struct {
	Service  *app.Service
	Theme    *theme.State
	Exporter *export.Exporter
	Season   []time.Month
	// Now overrides the service clock, mostly for tests.
	Now  func() time.Time
	Keys *KeyMap
}

type exportDoneMsg struct {
	path string
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	svc      *app.Service
	theme    *theme.State
	exporter *export.Exporter
	season   []time.Month

	keys KeyMap
	help help.Model
	view *view.State

	editor       *app.Editor
	editorTyping bool
	note         textinput.Model

	manager   *app.Manager
	cursor    int
	formOpen  bool
	formField int
	formDate  textinput.Model
	formDesc  textinput.Model

	status    string
	exporting bool

	width  int
	height int
}

// New builds the model over a loaded service.
func New(ctx context.Context, opts Options) *Model {
	svc := opts.Service
	if opts.Now != nil {
		svc.Now = opts.Now
	}
	ts := opts.Theme
	if ts == nil {
		ts = theme.New(theme.Options{PrefersDark: func() bool { return true }})
		ts.Init()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	note := textinput.New()
	note.Placeholder = "cita de este día"
	note.Prompt = "cita: "
	note.CharLimit = 200

	date := textinput.New()
	date.Placeholder = "2025-05-03"
	date.Prompt = "fecha: "
	date.CharLimit = 32

	desc := textinput.New()
	desc.Placeholder = "descripción"
	desc.Prompt = "cita: "
	desc.CharLimit = 200

	return &Model{
		ctx:      ctx,
		svc:      svc,
		theme:    ts,
		exporter: opts.Exporter,
		season:   opts.Season,
		keys:     keys,
		help:     help.New(),
		view:     svc.View(opts.Season),
		note:     note,
		formDate: date,
		formDesc: desc,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) mode() mode {
	switch {
	case m.view.ManagerOpen():
		return modeManager
	case m.view.EditorOpen():
		return modeEditor
	}
	return modeCalendar
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			logging.Error("export failed", "err", msg.err)
			m.status = "no se pudo exportar la imagen"
		} else {
			m.status = "imagen guardada en " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode() {
		case modeEditor:
			return m.updateEditor(msg)
		case modeManager:
			return m.updateManager(msg)
		}
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m *Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Up):
		m.move(-7)
	case key.Matches(msg, m.keys.Down):
		m.move(7)
	case key.Matches(msg, m.keys.NextTab):
		m.view.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.view.PrevTab()
	case key.Matches(msg, m.keys.NextYear):
		m.view.NextYear()
	case key.Matches(msg, m.keys.PrevYear):
		m.view.PrevYear()
	case key.Matches(msg, m.keys.Open):
		m.openEditor(m.view.SelectedInTab())
	case key.Matches(msg, m.keys.Manager):
		m.openManager()
	case key.Matches(msg, m.keys.Theme):
		t, err := m.theme.Toggle()
		if err != nil {
			logging.Warn("theme not saved", "err", err)
		}
		m.status = "tema " + themeName(t)
	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	}
	return m, nil
}

// move shifts the selection inside the active tab. A selection outside the
// tab lands on the tab's first day.
func (m *Model) move(n int) {
	if !m.view.Tab().Contains(m.view.Selected()) {
		m.view.Focus(m.view.Tab().First())
		return
	}
	m.view.MoveSelection(n)
}

func (m *Model) openEditor(d time.Time) {
	m.view.Select(d)
	m.editor = m.svc.OpenDay(d)
	m.editorTyping = false
	m.note.Blur()
	m.note.SetValue(m.editor.AppointmentText())
	m.note.CursorEnd()
}

func (m *Model) closeEditor() {
	m.view.CloseEditor()
	m.editor = nil
	m.editorTyping = false
	m.note.Blur()
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editorTyping {
		switch msg.Type {
		case tea.KeyEsc:
			m.editorTyping = false
			m.note.Blur()
			return m, nil
		case tea.KeyEnter:
			m.editor.SetAppointmentText(m.note.Value())
			m.saveEditor()
			return m, nil
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		m.editor.SetAppointmentText(m.note.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editor.Cancel()
		m.closeEditor()
	case key.Matches(msg, m.keys.Level):
		levels := record.Levels()
		m.editor.SetLevel(levels[int(msg.Runes[0]-'1')])
	case key.Matches(msg, m.keys.Clear):
		m.editor.ClearLevel()
	case key.Matches(msg, m.keys.Med):
		if med, ok := medKeys[msg.String()]; ok {
			m.editor.ToggleMedication(med)
		}
	case key.Matches(msg, m.keys.Type):
		m.editorTyping = true
		return m, m.note.Focus()
	case key.Matches(msg, m.keys.Complete):
		if err := m.editor.CompleteAppointment(m.ctx); err != nil {
			m.fail(err)
		}
	case key.Matches(msg, m.keys.Remove):
		if err := m.editor.RemoveAppointment(m.ctx); err != nil {
			m.fail(err)
		}
		m.note.SetValue("")
	case key.Matches(msg, m.keys.Save):
		m.saveEditor()
	}
	return m, nil
}

func (m *Model) saveEditor() {
	if err := m.editor.Save(m.ctx); err != nil {
		m.fail(err)
		return
	}
	m.status = "guardado " + day.Long(m.editor.Date())
	m.closeEditor()
}

func (m *Model) openManager() {
	m.view.OpenManager()
	m.editor = nil
	m.manager = m.svc.Manager()
	m.cursor = 0
	m.closeForm()
}

func (m *Model) closeManager() {
	if m.manager != nil {
		m.manager.Cancel()
	}
	m.manager = nil
	m.closeForm()
	m.view.CloseManager()
	m.refreshTabs()
}

// refreshTabs rebuilds the tabs after appointments may have landed in months
// that were not offered, keeping the active tab and selection.
func (m *Model) refreshTabs() {
	old := m.view
	next := m.svc.View(m.season)
	next.Focus(old.Selected())
	if next.SetYear(old.Tab().Year) {
		next.SetTab(old.Tab().Month)
	}
	m.view = next
}

func (m *Model) openForm(d time.Time, desc string) {
	m.formOpen = true
	m.formField = 0
	if d.IsZero() {
		m.formDate.SetValue("")
	} else {
		m.formDate.SetValue(day.Key(d))
	}
	m.formDate.CursorEnd()
	m.formDesc.SetValue(desc)
	m.formDesc.CursorEnd()
	m.formDesc.Blur()
	m.formDate.Focus()
}

func (m *Model) closeForm() {
	m.formOpen = false
	m.formDate.Blur()
	m.formDesc.Blur()
	m.formDate.SetValue("")
	m.formDesc.SetValue("")
}

func (m *Model) updateManager(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		return m.updateForm(msg)
	}
	list := m.manager.List()
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.closeManager()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.New):
		m.manager.Cancel()
		m.openForm(m.view.SelectedInTab(), "")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		if err := m.manager.Edit(m.cursor); err != nil {
			if errors.Is(err, app.ErrCompleted) {
				m.status = "cita completada"
			}
			return m, nil
		}
		f := m.manager.Form()
		m.openForm(f.Date, f.Description)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Complete):
		if err := m.manager.Complete(m.ctx, m.cursor); err != nil && !errors.Is(err, app.ErrNotFound) {
			m.fail(err)
		}
	case key.Matches(msg, m.keys.Remove):
		if err := m.manager.Delete(m.ctx, m.cursor); err != nil && !errors.Is(err, app.ErrNotFound) {
			m.fail(err)
		}
		if n := len(m.manager.List()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.manager.Cancel()
		m.closeForm()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		m.formField = 1 - m.formField
		if m.formField == 0 {
			m.formDesc.Blur()
			return m, m.formDate.Focus()
		}
		m.formDate.Blur()
		return m, m.formDesc.Focus()
	case tea.KeyEnter:
		m.submitForm()
		return m, nil
	}
	var cmd tea.Cmd
	if m.formField == 0 {
		m.formDate, cmd = m.formDate.Update(msg)
	} else {
		m.formDesc, cmd = m.formDesc.Update(msg)
	}
	return m, cmd
}

// submitForm adds or saves the form. An incomplete form is declined
// silently and stays open.
func (m *Model) submitForm() {
	var date time.Time
	if v := strings.TrimSpace(m.formDate.Value()); v != "" {
		if d, err := day.Parse(v, m.now()); err == nil {
			date = d
		}
	}
	m.manager.SetDate(date)
	m.manager.SetDescription(m.formDesc.Value())

	var err error
	if i, ok := m.manager.Editing(); ok {
		err = m.manager.Save(m.ctx)
		if err == nil {
			m.cursor = i
			if list := m.manager.List(); m.cursor >= len(list) {
				m.cursor = len(list) - 1
			}
		}
	} else {
		err = m.manager.Add(m.ctx)
		if err == nil {
			for i, a := range m.manager.List() {
				if a.Date.SameDay(date) {
					m.cursor = i
				}
			}
		}
	}
	switch {
	case errors.Is(err, app.ErrIncomplete):
		return
	case err != nil:
		m.fail(err)
		return
	}
	m.closeForm()
}

func (m *Model) now() time.Time {
	if m.svc.Now != nil {
		return m.svc.Now()
	}
	return time.Now()
}

func (m *Model) fail(err error) {
	logging.Error("write failed", "err", err)
	m.status = "error: " + err.Error()
}

// snapshot is a month of cells captured on the UI thread so the export can
// render without touching the stores.
type snapshot struct {
	year  int
	month time.Month
	cells []app.Cell
}

func (s snapshot) Month(year int, month time.Month, fn func(app.Cell)) {
	if year != s.year || month != s.month {
		return
	}
	for _, c := range s.cells {
		fn(c)
	}
}

func (m *Model) export() tea.Cmd {
	if m.exporter == nil {
		m.status = "exportación no disponible"
		return nil
	}
	if m.exporting {
		return nil
	}
	tab := m.view.Tab()
	snap := snapshot{year: tab.Year, month: tab.Month}
	m.svc.Month(tab.Year, tab.Month, func(c app.Cell) { snap.cells = append(snap.cells, c) })

	ex := *m.exporter
	ex.Palette = theme.PaletteFor(m.theme.Current())
	ctx := m.ctx
	m.exporting = true
	m.status = fmt.Sprintf("exportando %s…", day.MonthTitle(tab.Year, tab.Month))
	return func() tea.Msg {
		path, err := ex.Month(ctx, snap, snap.year, snap.month)
		return exportDoneMsg{path: path, err: err}
	}
}

func themeName(t theme.Theme) string {
	if t == theme.Dark {
		return "oscuro"
	}
	return "claro"
}
