package commands

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/commands/options"
	"tableflip.dev/allergy/pkg/runner/appointments"
)

func addAppointments(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appointment", "citas", "cita"},
		Short:   "Manage appointments, at most one per day.",
	}

	addAppointmentsList(cmd)
	addAppointmentsAdd(cmd)
	addAppointmentsEdit(cmd)
	addAppointmentsDelete(cmd)
	addAppointmentsComplete(cmd)
	addAppointmentsExport(cmd)
	addAppointmentsImport(cmd)
	topLevel.AddCommand(cmd)
}

func addAppointmentsList(parent *cobra.Command) {
	io := &options.IDOptions{}
	var pending bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List appointments with the number other commands take.",
		Example: `
allergy appointments list
allergy appointments list --pending --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.List{Service: s.Service, Pending: pending, ShowID: io.ShowID, Format: oo.Format()}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVarP(&pending, "pending", "p", false, "Only list pending appointments.")
	parent.AddCommand(cmd)
}

func addAppointmentsAdd(parent *cobra.Command) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: options.Wrap80("Add an appointment. An appointment already on that day is overwritten."),
		Example: `
allergy appointments add --on 2025-05-20 revisión alergólogo
allergy citas add --on mañana "recoger receta"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			r := appointments.Add{
				Service:     s.Service,
				On:          t,
				Description: strings.Join(args, " "),
				Format:      oo.Format(),
			}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func addAppointmentsEdit(parent *cobra.Command) {
	on := &options.OnOptions{}
	var description string
	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: options.Wrap80("Change the day or description of an appointment. Moving onto a day that has one replaces it."),
		Example: `
allergy appointments edit 2 --on 2025-06-01
allergy appointments edit 0 --description "revisión anual"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			i, err := options.ParseIndex(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			var t time.Time
			if on.Set(cmd) {
				if t, err = on.GetOn(time.Now()); err != nil {
					return oo.HandleError(err)
				}
			}
			if t.IsZero() && !cmd.Flags().Changed("description") {
				return oo.HandleError(errors.New("nothing to change, set --on or --description"))
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.Edit{
				Service:     s.Service,
				Index:       i,
				On:          t,
				Description: description,
				Format:      oo.Format(),
			}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description.")
	parent.AddCommand(cmd)
}

// byIndexOrDay resolves the `<number> | --on <day>` form shared by delete
// and complete.
func byIndexOrDay(cmd *cobra.Command, on *options.OnOptions, args []string) (int, time.Time, error) {
	if on.Set(cmd) {
		if len(args) > 0 {
			return 0, time.Time{}, errors.New("give a number or --on, not both")
		}
		t, err := on.GetOn(time.Now())
		return 0, t, err
	}
	if len(args) != 1 {
		return 0, time.Time{}, errors.New("an appointment number or --on is required")
	}
	i, err := options.ParseIndex(args[0])
	return i, time.Time{}, err
}

func addAppointmentsDelete(parent *cobra.Command) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:     "delete [number]",
		Aliases: []string{"rm"},
		Short:   "Delete an appointment by number or by day.",
		Example: `
allergy appointments delete 1
allergy appointments delete --on 2025-05-20
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			i, t, err := byIndexOrDay(cmd, on, args)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.Delete{Service: s.Service, Index: i, On: t, Format: oo.Format()}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func addAppointmentsComplete(parent *cobra.Command) {
	on := &options.OnOptions{}
	cmd := &cobra.Command{
		Use:     "complete [number]",
		Aliases: []string{"done", "x"},
		Short:   "Mark an appointment completed by number or by day.",
		Example: `
allergy appointments complete 0
allergy appointments complete --on hoy
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			i, t, err := byIndexOrDay(cmd, on, args)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.Complete{Service: s.Service, Index: i, On: t, Format: oo.Format()}
			return oo.HandleError(r.Do(ctx))
		},
	}
	options.AddOnArgs(cmd, on)
	parent.AddCommand(cmd)
}

func addAppointmentsExport(parent *cobra.Command) {
	var (
		path    string
		pending bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write appointments as an iCalendar file.",
		Example: `
allergy appointments export > citas.ics
allergy appointments export --pending --file citas.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.Export{Service: s.Service, Path: path, Pending: pending, Out: os.Stdout}
			return oo.HandleError(r.Do(ctx))
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "File to write, stdout when empty.")
	cmd.Flags().BoolVarP(&pending, "pending", "p", false, "Only export pending appointments.")
	parent.AddCommand(cmd)
}

func addAppointmentsImport(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: options.Wrap80("Merge appointments from an iCalendar file. Events land on their start day and replace what is there."),
		Example: `
allergy appointments import citas.ics
cat citas.ics | allergy appointments import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appointments.Import{Service: s.Service, Path: args[0], In: os.Stdin}
			return oo.HandleError(r.Do(ctx))
		},
	}
	parent.AddCommand(cmd)
}
