package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the severity color attached to a day. The zero value means the day
// has no entry yet, which is not the same as a day without symptoms.
type Level int

const (
	Unset Level = iota
	Clear
	Mild
	Moderate
	Severe
)

var levelTags = map[Level]string{
	Clear:    "green",
	Mild:     "yellow",
	Moderate: "orange",
	Severe:   "red",
}

// Levels lists the settable levels from least to most severe.
func Levels() []Level {
	return []Level{Clear, Mild, Moderate, Severe}
}

// Tag is the stored string form: green, yellow, orange, red, or "" for Unset.
func (l Level) Tag() string {
	return levelTags[l]
}

func (l Level) String() string {
	switch l {
	case Clear:
		return "sin síntomas"
	case Mild:
		return "síntomas leves"
	case Moderate:
		return "síntomas moderados"
	case Severe:
		return "síntomas graves"
	default:
		return "sin registro"
	}
}

// ParseLevel accepts stored tags, severity words and 0-4.
func ParseLevel(v string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none", "unset", "0", "null":
		return Unset, nil
	case "green", "verde", "clear", "1":
		return Clear, nil
	case "yellow", "amarillo", "mild", "2":
		return Mild, nil
	case "orange", "naranja", "moderate", "3":
		return Moderate, nil
	case "red", "rojo", "severe", "4":
		return Severe, nil
	}
	return Unset, fmt.Errorf("record: unknown symptom level %q", v)
}

func (l Level) MarshalJSON() ([]byte, error) {
	if l == Unset {
		return []byte("null"), nil
	}
	return json.Marshal(l.Tag())
}

func (l Level) MarshalYAML() (interface{}, error) {
	if l == Unset {
		return nil, nil
	}
	return l.Tag(), nil
}

// UnmarshalJSON decodes unrecognized tags as Unset rather than failing the
// whole collection.
func (l *Level) UnmarshalJSON(b []byte) error {
	var tag *string
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}
	*l = Unset
	if tag == nil {
		return nil
	}
	for k, v := range levelTags {
		if v == *tag {
			*l = k
		}
	}
	return nil
}
