package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/commands/options"
)

var (
	oo    = &options.OutputOptions{}
	debug bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "allergy",
		Short: options.Wrap80("Track allergy symptoms, medication and appointments on a month calendar."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Mirror the log to stderr at debug level.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCal(topLevel)
	addDay(topLevel)
	addAppointments(topLevel)
	addReport(topLevel)
	addTheme(topLevel)
	addExport(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}
