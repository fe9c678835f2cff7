// Package view holds the selection state shown on screen: which month tab is
// active, which day is selected and which dialogs are open. Nothing here is
// persisted; days are referenced by value.
package view

import (
	"sort"
	"time"

	"tableflip.dev/allergy/pkg/day"
)

// Tab is one month of one year.
type Tab struct {
	Year  int
	Month time.Month
}

// First returns the first day of the tab's month.
func (t Tab) First() time.Time {
	return day.Date(t.Year, t.Month, 1)
}

// Contains reports whether d falls in the tab's month.
func (t Tab) Contains(d time.Time) bool {
	return day.SameMonth(d, t.Year, t.Month)
}

func (t Tab) before(o Tab) bool {
	if t.Year != o.Year {
		return t.Year < o.Year
	}
	return t.Month < o.Month
}

// Tabs builds the month tabs: the season months of the current year plus any
// month holding one of the given days. The result is sorted and unique.
func Tabs(season []time.Month, now time.Time, days ...time.Time) []Tab {
	seen := make(map[Tab]struct{})
	var out []Tab
	add := func(t Tab) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	year := now.In(time.Local).Year()
	for _, m := range season {
		add(Tab{Year: year, Month: m})
	}
	for _, d := range days {
		if d.IsZero() {
			continue
		}
		l := d.In(time.Local)
		add(Tab{Year: l.Year(), Month: l.Month()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].before(out[j]) })
	return out
}

// State is the derived UI state.
type State struct {
	tabs []Tab
	tab  Tab

	selected    time.Time
	editorOpen  bool
	managerOpen bool
}

// New starts on now's month when it is offered, else on the first month of
// now's year, else on the first tab. The selected day starts as now.
func New(tabs []Tab, now time.Time) *State {
	s := &State{tabs: append([]Tab(nil), tabs...), selected: day.Start(now)}
	sort.Slice(s.tabs, func(i, j int) bool { return s.tabs[i].before(s.tabs[j]) })
	if len(s.tabs) == 0 {
		l := now.In(time.Local)
		s.tabs = []Tab{{Year: l.Year(), Month: l.Month()}}
	}
	l := now.In(time.Local)
	current := Tab{Year: l.Year(), Month: l.Month()}
	switch {
	case s.has(current):
		s.tab = current
	case len(s.MonthsIn(current.Year)) > 0:
		s.tab = Tab{Year: current.Year, Month: s.MonthsIn(current.Year)[0]}
	default:
		s.tab = s.tabs[0]
	}
	return s
}

func (s *State) has(t Tab) bool {
	for _, v := range s.tabs {
		if v == t {
			return true
		}
	}
	return false
}

func (s *State) indexOf(t Tab) int {
	for i, v := range s.tabs {
		if v == t {
			return i
		}
	}
	return -1
}

// Tab returns the active month tab.
func (s *State) Tab() Tab {
	return s.tab
}

// Year returns the active year group.
func (s *State) Year() int {
	return s.tab.Year
}

// AllTabs returns every tab.
func (s *State) AllTabs() []Tab {
	return append([]Tab(nil), s.tabs...)
}

// Years lists the year groups in ascending order.
func (s *State) Years() []int {
	var out []int
	for _, t := range s.tabs {
		if len(out) == 0 || out[len(out)-1] != t.Year {
			out = append(out, t.Year)
		}
	}
	return out
}

// MonthsIn lists the months offered for year, in order.
func (s *State) MonthsIn(year int) []time.Month {
	var out []time.Month
	for _, t := range s.tabs {
		if t.Year == year {
			out = append(out, t.Month)
		}
	}
	return out
}

// SetYear switches the year group. The same month-of-year stays selected
// when the new year offers it, otherwise the year's first month is used. An
// unknown year is refused.
func (s *State) SetYear(year int) bool {
	months := s.MonthsIn(year)
	if len(months) == 0 {
		return false
	}
	next := Tab{Year: year, Month: months[0]}
	for _, m := range months {
		if m == s.tab.Month {
			next.Month = m
			break
		}
	}
	s.tab = next
	return true
}

// SetTab switches to month within the active year.
func (s *State) SetTab(month time.Month) bool {
	t := Tab{Year: s.tab.Year, Month: month}
	if !s.has(t) {
		return false
	}
	s.tab = t
	return true
}

// NextTab moves to the following tab, crossing into the next year group.
func (s *State) NextTab() bool {
	i := s.indexOf(s.tab)
	if i < 0 || i+1 >= len(s.tabs) {
		return false
	}
	s.tab = s.tabs[i+1]
	return true
}

// PrevTab moves to the preceding tab.
func (s *State) PrevTab() bool {
	i := s.indexOf(s.tab)
	if i <= 0 {
		return false
	}
	s.tab = s.tabs[i-1]
	return true
}

// NextYear and PrevYear step through the year groups.
func (s *State) NextYear() bool {
	years := s.Years()
	for i, y := range years {
		if y == s.tab.Year && i+1 < len(years) {
			return s.SetYear(years[i+1])
		}
	}
	return false
}

func (s *State) PrevYear() bool {
	years := s.Years()
	for i, y := range years {
		if y == s.tab.Year && i > 0 {
			return s.SetYear(years[i-1])
		}
	}
	return false
}

// Selected returns the selected day, zero when none.
func (s *State) Selected() time.Time {
	return s.selected
}

// Select picks d and opens the day editor for it. The active tab follows the
// selection when d's month is offered.
func (s *State) Select(d time.Time) {
	s.Focus(d)
	s.editorOpen = true
}

// Focus moves the selection to d without opening the editor.
func (s *State) Focus(d time.Time) {
	s.selected = day.Start(d)
	l := s.selected
	if t := (Tab{Year: l.Year(), Month: l.Month()}); s.has(t) {
		s.tab = t
	}
}

// MoveSelection shifts the selected day by n days, staying inside the active
// tab's month.
func (s *State) MoveSelection(n int) bool {
	base := s.selected
	if !s.tab.Contains(base) {
		base = s.tab.First()
	}
	next := day.Start(base.AddDate(0, 0, n))
	if !s.tab.Contains(next) {
		return false
	}
	s.selected = next
	return true
}

// SelectedInTab returns the selection clamped to the active tab: the
// selected day when it falls in the tab, else the tab's first day.
func (s *State) SelectedInTab() time.Time {
	if s.tab.Contains(s.selected) {
		return s.selected
	}
	return s.tab.First()
}

func (s *State) EditorOpen() bool  { return s.editorOpen }
func (s *State) ManagerOpen() bool { return s.managerOpen }

// CloseEditor closes the day editor, keeping the selection.
func (s *State) CloseEditor() {
	s.editorOpen = false
}

// OpenManager opens the appointment manager. The day editor closes so only
// one dialog is on screen.
func (s *State) OpenManager() {
	s.editorOpen = false
	s.managerOpen = true
}

func (s *State) CloseManager() {
	s.managerOpen = false
}
