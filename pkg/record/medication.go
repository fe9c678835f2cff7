package record

import (
	"fmt"
	"strings"
)

// Medication is one of the fixed set of tracked medications.
type Medication string

const (
	Bilaxten Medication = "Bilaxten"
	Relvar   Medication = "Relvar"
	Ventolin Medication = "Ventolin"
	Dymista  Medication = "Dymista"
)

// Medications lists the tracked set in display order.
func Medications() []Medication {
	return []Medication{Bilaxten, Relvar, Ventolin, Dymista}
}

// Valid reports whether m belongs to the tracked set.
func (m Medication) Valid() bool {
	for _, v := range Medications() {
		if v == m {
			return true
		}
	}
	return false
}

// Initial is the single letter shown in calendar cells.
func (m Medication) Initial() string {
	if m == "" {
		return ""
	}
	return string(m[0])
}

// ParseMedication matches case-insensitively on the name or its initial.
func ParseMedication(v string) (Medication, error) {
	s := strings.TrimSpace(v)
	for _, m := range Medications() {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Initial()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("record: unknown medication %q", v)
}

// Normalize drops unknown names and duplicates, keeping first-seen order.
func Normalize(meds []Medication) []Medication {
	out := make([]Medication, 0, len(meds))
	seen := make(map[Medication]struct{}, len(meds))
	for _, m := range meds {
		if !m.Valid() {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Toggle adds m when absent and removes it otherwise.
func Toggle(meds []Medication, m Medication) []Medication {
	out := make([]Medication, 0, len(meds)+1)
	found := false
	for _, v := range meds {
		if v == m {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, m)
	}
	return out
}

// Has reports whether meds contains m.
func Has(meds []Medication, m Medication) bool {
	for _, v := range meds {
		if v == m {
			return true
		}
	}
	return false
}
