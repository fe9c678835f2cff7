// Package report summarises symptoms and medications over a window of days.
package report

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/app"
	"tableflip.dev/allergy/pkg/printers"
	"tableflip.dev/allergy/pkg/timeutil"
)

type Report struct {
	Service *app.Service
	// Window is a day window such as "1w" or "10d".
	Window string
	Format string
	Now    func() time.Time
}

func (r *Report) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not report, no service")
	}
	days, label, err := timeutil.ParseWindow(r.Window)
	if err != nil {
		return err
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	since, until := timeutil.Range(now(), days)

	res, err := r.Service.Report(ctx, since, until)
	if err != nil {
		return err
	}
	if r.Format != "" && r.Format != printers.FormatPretty {
		return printers.Structured(color.Output, r.Format, res)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Report(res, label)
	return nil
}
