// Package capture exports a month of the calendar as a JPEG image.
package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/export"
)

type Capture struct {
	Service  *app.Service
	Exporter *export.Exporter
	Season   []time.Month

	// Year and Month default to the tab the calendar opens on.
	Year  int
	Month time.Month
}

func (c *Capture) Do(ctx context.Context) error {
	if c.Service == nil || c.Exporter == nil {
		return errors.New("can not export, no service")
	}
	tab := c.Service.View(c.Season).Tab()
	year, month := tab.Year, tab.Month
	if c.Year != 0 {
		year = c.Year
	}
	if c.Month != 0 {
		month = c.Month
	}

	path, err := c.Exporter.Month(ctx, c.Service, year, month)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, path)
	return nil
}
