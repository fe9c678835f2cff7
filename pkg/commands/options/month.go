package options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/day"
)

// YearMonthOptions pick a month tab.
type YearMonthOptions struct {
	Year  int
	Month string
}

func AddYearMonthArgs(cmd *cobra.Command, o *YearMonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Year to show. Defaults to the current one.")
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, by number or name, example: --month=5 or --month=mayo.`)
	_ = cmd.RegisterFlagCompletionFunc("month", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, 12)
		for m := time.January; m <= time.December; m++ {
			names = append(names, day.MonthName(m))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetMonth returns 0 when no month was given.
func (o *YearMonthOptions) GetMonth() (time.Month, error) {
	return ParseMonth(o.Month)
}

// ParseMonth accepts 1-12, Spanish names and English names or prefixes.
func ParseMonth(v string) (time.Month, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month out of range: %d", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		es, en := day.MonthName(m), strings.ToLower(m.String())
		if s == es || s == en || (len(s) >= 3 && (strings.HasPrefix(es, s) || strings.HasPrefix(en, s))) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", v)
}
