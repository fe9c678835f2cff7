package info

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

func (n *Info) Do(_ context.Context) error {
	out := color.Output

	if override := os.Getenv("ALLERGY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "ALLERGY_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "ALLERGY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	months := make([]string, 0, len(n.Config.Season()))
	for _, m := range n.Config.Season() {
		months = append(months, day.MonthName(m))
	}
	_, _ = fmt.Fprintln(out, "Config.season: ", strings.Join(months, ", "))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	recs, err := n.Persistence.LoadRecords()
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s: unreadable (%v)\n", store.KeyDayRecords, err)
	} else {
		_, _ = fmt.Fprintf(out, "%s: %d days\n", store.KeyDayRecords, len(recs))
	}
	apps, err := n.Persistence.LoadAppointments()
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s: unreadable (%v)\n", store.KeyAppointments, err)
	} else {
		_, _ = fmt.Fprintf(out, "%s: %d appointments\n", store.KeyAppointments, len(apps))
	}
	if v, ok := n.Persistence.Get(store.KeyTheme); ok {
		_, _ = fmt.Fprintf(out, "%s: %s\n", store.KeyTheme, v)
	}

	_, _ = fmt.Fprintf(out, "Keys:\n")
	keys := n.Persistence.Keys()
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no keys")
	}
	return nil
}
