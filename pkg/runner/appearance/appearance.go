// Package appearance shows and changes the light/dark theme.
package appearance

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/theme"
)

var errNoTheme = errors.New("can not change theme, no theme state")

func printTheme(t theme.Theme) {
	b := color.New(color.Bold)
	_, _ = fmt.Fprintf(color.Output, "tema: %s\n", b.Sprint(string(t)))
}

type Show struct {
	State *theme.State
}

func (s *Show) Do(_ context.Context) error {
	if s.State == nil {
		return errNoTheme
	}
	printTheme(s.State.Current())
	return nil
}

type Set struct {
	State *theme.State
	Theme theme.Theme
}

func (s *Set) Do(_ context.Context) error {
	if s.State == nil {
		return errNoTheme
	}
	if err := s.State.Set(s.Theme); err != nil {
		return err
	}
	printTheme(s.State.Current())
	return nil
}

type Toggle struct {
	State *theme.State
}

func (t *Toggle) Do(_ context.Context) error {
	if t.State == nil {
		return errNoTheme
	}
	next, err := t.State.Toggle()
	if err != nil {
		return err
	}
	printTheme(next)
	return nil
}
