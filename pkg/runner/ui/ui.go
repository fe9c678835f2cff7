// Package ui runs the interactive calendar.
package ui

import (
	"context"
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/export"
	"tableflip.dev/allergy/pkg/theme"
	"tableflip.dev/allergy/pkg/tui"
)

type UI struct {
	Service  *app.Service
	Theme    *theme.State
	Exporter *export.Exporter
	Season   []time.Month
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no service")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("can not open ui, stdout is not a terminal")
	}
	m := tui.New(ctx, tui.Options{
		Service:  d.Service,
		Theme:    d.Theme,
		Exporter: d.Exporter,
		Season:   d.Season,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
