package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/runner/report"
	"tableflip.dev/allergy/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var window string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize symptom levels, medication and appointments over recent days",
		Long: `Report counts the recorded days per symptom level and medication within the
window ending today, and lists pending and completed appointments.

Examples:
  allergy report
  allergy report --window 10d
  allergy report -w 2w -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := report.Report{Service: s.Service, Window: window, Format: oo.Format()}
			return oo.HandleError(r.Do(ctx))
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", timeutil.DefaultWindow, "days to include (for example 10d, 2w)")
	topLevel.AddCommand(cmd)
}
