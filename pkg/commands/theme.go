package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/runner/appearance"
	"tableflip.dev/allergy/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "theme",
		Aliases: []string{"tema"},
		Short:   "Show or change the light/dark theme.",
		Example: `
allergy theme show
allergy theme set light
allergy theme toggle
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appearance.Show{State: s.Theme}
			return oo.HandleError(r.Do(ctx))
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the active theme.",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	}

	set := &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a theme.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			t, ok := theme.Parse(args[0])
			if !ok {
				return oo.HandleError(fmt.Errorf("unknown theme %q, want light or dark", args[0]))
			}
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appearance.Set{State: s.Theme, Theme: t}
			return oo.HandleError(r.Do(ctx))
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			r := appearance.Toggle{State: s.Theme}
			return oo.HandleError(r.Do(ctx))
		},
	}

	cmd.AddCommand(show, set, toggle)
	topLevel.AddCommand(cmd)
}
