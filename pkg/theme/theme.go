// Package theme holds the process wide light/dark preference.
//
// The value is chosen once at startup from the cookie mirror, then the stored
// value, then the terminal's background. Changes go through Set, which calls
// apply to persist the value, refresh the cookie and notify listeners.
package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is either Light or Dark.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark" in any case.
func Parse(v string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(v))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// KV is the durable storage the preference is kept in.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// StorageKey is the key the preference is stored under.
const StorageKey = "theme"

// Options configures a State.
type Options struct {
	Storage KV
	Cookie  *Cookie
	// PrefersDark probes the OS/terminal preference. Defaults to
	// lipgloss.HasDarkBackground.
	PrefersDark func() bool
}

// State is the current theme plus the side effects of changing it.
type State struct {
	mu      sync.RWMutex
	current Theme
	opts    Options
	hooks   []func(Theme)
}

// New returns a State holding Dark until Init runs.
func New(opts Options) *State {
	if opts.PrefersDark == nil {
		opts.PrefersDark = lipgloss.HasDarkBackground
	}
	return &State{current: Dark, opts: opts}
}

// OnApply registers fn to run every time a theme is applied.
func (s *State) OnApply(fn func(Theme)) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Init picks the initial theme and applies it without writing anything back.
func (s *State) Init() Theme {
	t := s.initial()
	_ = s.apply(t, false)
	return t
}

func (s *State) initial() Theme {
	if s.opts.Cookie != nil {
		if t, ok := s.opts.Cookie.Read(); ok {
			return t
		}
	}
	if s.opts.Storage != nil {
		if v, ok := s.opts.Storage.Get(StorageKey); ok {
			if t, ok := Parse(v); ok {
				return t
			}
		}
	}
	if s.opts.PrefersDark() {
		return Dark
	}
	return Light
}

// Current returns the active theme.
func (s *State) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set switches to t, persisting it and refreshing the cookie.
func (s *State) Set(t Theme) error {
	if _, ok := Parse(string(t)); !ok {
		return fmt.Errorf("theme: unknown theme %q", t)
	}
	return s.apply(t, true)
}

// Toggle flips between light and dark.
func (s *State) Toggle() (Theme, error) {
	next := s.Current().Other()
	return next, s.Set(next)
}

func (s *State) apply(t Theme, persist bool) error {
	s.mu.Lock()
	s.current = t
	hooks := append([]func(Theme){}, s.hooks...)
	s.mu.Unlock()

	var err error
	if persist {
		if s.opts.Storage != nil {
			if serr := s.opts.Storage.Set(StorageKey, string(t)); serr != nil {
				err = serr
			}
		}
		if s.opts.Cookie != nil {
			if cerr := s.opts.Cookie.Write(t); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	for _, fn := range hooks {
		fn(t)
	}
	return err
}
