package commands

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/logging"
	"tableflip.dev/allergy/pkg/store"
	"tableflip.dev/allergy/pkg/theme"
)

// session is everything a command needs once the data is loaded.
type session struct {
	Config      store.Config
	Persistence store.Persistence
	Service     *app.Service
	Theme       *theme.State
}

// load reads the config, starts logging and opens the stored data. Storage
// read failures are logged and leave empty collections.
func load(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := logging.Init(logging.Config{Debug: debug || cfg.Debug(), Dir: cfg.BasePath()}); err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return open(ctx, cfg, p)
}

func open(ctx context.Context, cfg store.Config, p store.Persistence) (*session, error) {
	svc := app.New(p)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}

	ts := theme.New(theme.Options{
		Storage: p,
		Cookie:  theme.NewCookie(cfg.BasePath()),
	})
	ts.OnApply(func(t theme.Theme) {
		lipgloss.SetHasDarkBackground(t == theme.Dark)
		logging.Debug("theme applied", "theme", string(t))
	})
	ts.Init()

	return &session{
		Config:      cfg,
		Persistence: p,
		Service:     svc,
		Theme:       ts,
	}, nil
}
