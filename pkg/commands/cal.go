package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/commands/options"
	"tableflip.dev/allergy/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	ym := &options.YearMonthOptions{}
	var all bool
	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar", "calendario"},
		Short:   options.Wrap80("Print the month calendar with levels, medication initials and appointments."),
		Example: `
allergy cal
allergy cal --month junio
allergy cal --year 2024 --all
allergy cal --month 5 -o json
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
			r := cal.Cal{
				Service: s.Service,
				Season:  s.Config.Season(),
				Year:    ym.Year,
				Month:   month,
				All:     all,
				Format:  oo.Format(),
			}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddYearMonthArgs(cmd, ym)
	cmd.Flags().BoolVar(&all, "all", false, "Print every month tab of the year.")
	topLevel.AddCommand(cmd)
}
