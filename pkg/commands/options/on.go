package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/day"
)

// OnOptions selects a calendar day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify a day, example: --on="2025-5-28", --on="5/28" or --on=ayer.`)
}

// GetOn parses the flag relative to now. A short date keeps the current year.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	if o.OnString == "" {
		return day.Start(now), nil
	}
	return day.Parse(o.OnString, now)
}

// Set reports whether a day was given explicitly.
func (o *OnOptions) Set(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("on")
}
