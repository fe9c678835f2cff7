package day

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// WeekHeader labels grid columns; weeks start on Monday.
var WeekHeader = [7]string{"lu", "ma", "mi", "ju", "vi", "sá", "do"}

// MonthName is the lower case Spanish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// MonthTitle renders "mayo 2025".
func MonthTitle(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", MonthName(m), year)
}

// Long renders t as "3 de mayo, 2025".
func Long(t time.Time) string {
	l := t.In(time.Local)
	return fmt.Sprintf("%d de %s, %d", l.Day(), MonthName(l.Month()), l.Year())
}

// Column is t's position in a Monday-first week, 0 through 6.
func Column(t time.Time) int {
	return (int(t.In(time.Local).Weekday()) + 6) % 7
}
