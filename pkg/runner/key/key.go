// Package key provides CLI helpers to display the calendar legend.
package key

import (
	"context"

	"tableflip.dev/allergy/pkg/printers"
)

// Key prints the symptom colors, medication initials and appointment marks.
type Key struct{}

// Do renders the legend to stdout.
func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Key()
	return nil
}
