package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/commands/options"
	"tableflip.dev/allergy/pkg/export"
	"tableflip.dev/allergy/pkg/runner/capture"
	"tableflip.dev/allergy/pkg/theme"
)

type exportOptions struct {
	Dir     string
	Width   int
	Height  int
	Quality int
	Timeout time.Duration
}

func addExportArgs(cmd *cobra.Command, o *exportOptions) {
	cmd.Flags().StringVar(&o.Dir, "dir", ".", "Directory the image is written to.")
	cmd.Flags().IntVar(&o.Width, "width", export.DefaultWidth, "Browser viewport width.")
	cmd.Flags().IntVar(&o.Height, "height", export.DefaultHeight, "Browser viewport height.")
	cmd.Flags().IntVar(&o.Quality, "quality", export.DefaultQuality, "JPEG quality, 1 to 100.")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", export.DefaultTimeout, "How long to wait for the browser.")
}

func (o *exportOptions) exporter(t theme.Theme) *export.Exporter {
	return &export.Exporter{
		Dir:     o.Dir,
		Palette: theme.PaletteFor(t),
		Width:   o.Width,
		Height:  o.Height,
		Timeout: o.Timeout,
		Quality: o.Quality,
	}
}

func addExport(topLevel *cobra.Command) {
	ym := &options.YearMonthOptions{}
	eo := &exportOptions{}
	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"capture", "captura"},
		Short: options.Wrap80("Save the month calendar as a JPEG image named " +
			"alergia-captura-<mes>.jpg. Needs a local Chrome or Chromium."),
		Example: `
allergy export
allergy export --month junio --dir ~/Descargas
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			month, err := ym.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := capture.Capture{
				Service:  s.Service,
				Exporter: eo.exporter(s.Theme.Current()),
				Season:   s.Config.Season(),
				Year:     ym.Year,
				Month:    month,
			}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddYearMonthArgs(cmd, ym)
	addExportArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
