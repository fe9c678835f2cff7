package commands

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/logging"
	"tableflip.dev/allergy/pkg/runner/ui"
	"tableflip.dev/allergy/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	eo := &exportOptions{}
	var (
		demo bool
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
allergy ui
allergy ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return err
			}
			if demo {
				if s, err = demoSession(ctx, s.Config, seed); err != nil {
					return err
				}
				defer os.RemoveAll(s.Config.BasePath())
			}
			i := ui.UI{
				Service:  s.Service,
				Theme:    s.Theme,
				Exporter: eo.exporter(s.Theme.Current()),
				Season:   s.Config.Season(),
			}
			return i.Do(ctx)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Open with generated data in a throwaway directory.")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for --demo data.")
	addExportArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}

// demoSession opens generated data in a temporary store so the real data is
// never touched.
func demoSession(ctx context.Context, cfg store.Config, seed int64) (*session, error) {
	dir, err := os.MkdirTemp("", "allergy-demo-")
	if err != nil {
		return nil, err
	}
	demoCfg := store.StaticConfig{Path: dir, Verbose: cfg.Debug()}
	for _, m := range cfg.Season() {
		demoCfg.Months = append(demoCfg.Months, int(m))
	}
	p, err := store.Load(demoCfg)
	if err != nil {
		return nil, err
	}
	recs, apps := ui.Demo(time.Now(), cfg.Season(), seed)
	if err := p.SaveRecords(recs); err != nil {
		return nil, err
	}
	if err := p.SaveAppointments(apps); err != nil {
		return nil, err
	}
	logging.Info("demo data", "dir", dir, "days", len(recs), "appointments", len(apps))
	return open(ctx, demoCfg, p)
}
