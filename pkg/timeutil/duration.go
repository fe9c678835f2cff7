package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/allergy/pkg/day"
)

const (
	// DefaultWindow is the fallback report window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-zí]+)`)
	unitDays      = map[string]int{
		"d":       1,
		"day":     1,
		"days":    1,
		"dia":     1,
		"dias":    1,
		"día":     1,
		"días":    1,
		"w":       7,
		"wk":      7,
		"wks":     7,
		"week":    7,
		"weeks":   7,
		"s":       7,
		"sem":     7,
		"semana":  7,
		"semanas": 7,
	}
)

// ParseWindow parses a window of whole days such as "1w", "10d" or "2w3d" and
// returns the number of days along with a canonical, compact representation.
// When the input is empty, the default window of one week is used.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		mult, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * mult
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a number of days using week/day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}

// Range returns the first and last calendar day of a window of days ending on
// now's day.
func Range(now time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	until := day.Start(now)
	since := until.AddDate(0, 0, -(days - 1))
	return since, until
}
