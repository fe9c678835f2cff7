package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the data is stored.",
		Example: `
allergy info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := load(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			i := info.Info{
				Config:      s.Config,
				Persistence: s.Persistence,
			}
			return oo.HandleError(i.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
