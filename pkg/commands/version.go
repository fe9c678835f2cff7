package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"tableflip.dev/allergy/pkg/printers"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	shortened := false
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get allergy version.",
		Example: `
allergy version
allergy version -o yaml
`,
		Run: func(_ *cobra.Command, _ []string) {
			output := "json"
			if oo.Format() == printers.FormatYAML {
				output = "yaml"
			}
			resp := goversion.FuncWithOutput(shortened, version, commit, date, output)
			fmt.Print(resp)
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")

	topLevel.AddCommand(cmd)
}
