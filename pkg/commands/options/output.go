package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.PersistentFlags().StringVarP(&po.Output, "output", "o", printers.FormatPretty,
		"Output format. One of 'pretty', 'json' or 'yaml'.")
}

// Format resolves the flags to one of the printers formats.
func (o *OutputOptions) Format() string {
	if o.JSON {
		return printers.FormatJSON
	}
	switch f := strings.ToLower(strings.TrimSpace(o.Output)); f {
	case "", printers.FormatPretty:
		return printers.FormatPretty
	default:
		return f
	}
}

func (o *OutputOptions) Validate() error {
	switch o.Format() {
	case printers.FormatPretty, printers.FormatJSON, printers.FormatYAML, "yml":
		return nil
	}
	return fmt.Errorf("unsupported output format %q", o.Output)
}

func (o *OutputOptions) HandleError(err error) error {
	if o.Format() == printers.FormatJSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
