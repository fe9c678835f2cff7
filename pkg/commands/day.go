package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/commands/options"
	"tableflip.dev/allergy/pkg/runner/mark"
)

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"dia"},
		Short:   "Show or edit what was recorded for a day.",
	}

	addDayShow(cmd)
	addDaySet(cmd)
	addDayClear(cmd)
	topLevel.AddCommand(cmd)
}

func addDayShow(parent *cobra.Command) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the level, medication and appointment for a day.",
		Example: `
allergy day show
allergy day show --on 2025-05-03
allergy day show --on ayer -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			t, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			r := mark.Show{Service: s.Service, On: t, Format: oo.Format()}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func addDaySet(parent *cobra.Command) {
	on := &options.OnOptions{}
	ro := &options.RecordOptions{}
	cmd := &cobra.Command{
		Use:   "set",
		Short: options.Wrap80("Record a day the way the calendar editor does. Flags that are not given keep their stored value."),
		Example: `
allergy day set --level moderate --med Bilaxten --med Relvar
allergy day set --on 2025-05-03 --toggle Ventolin
allergy day set --on mañana --appointment "revisión alergólogo"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			t, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			level, err := ro.GetLevel(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			meds, replace, err := ro.GetMedications(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			toggle, err := ro.GetToggle()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := mark.Set{
				Service:            s.Service,
				On:                 t,
				Format:             oo.Format(),
				Level:              level,
				Medications:        meds,
				ReplaceMedications: replace,
				Toggle:             toggle,
				Appointment:        ro.Appointment,
			}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddRecordArgs(cmd, ro)
	parent.AddCommand(cmd)
}

func addDayClear(parent *cobra.Command) {
	on := &options.OnOptions{}
	var appointment bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset a day to no level and no medication.",
		Example: `
allergy day clear --on ayer
allergy day clear --on 2025-05-03 --appointment
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			t, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := mark.Clear{Service: s.Service, On: t, Format: oo.Format(), Appointment: appointment}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	cmd.Flags().BoolVar(&appointment, "appointment", false, "Remove the day's appointment too.")
	parent.AddCommand(cmd)
}
