package app

import (
	"context"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

// LevelCount is the number of days marked with a level.
type LevelCount struct {
	Level record.Level `json:"level"`
	Days  int          `json:"days"`
}

// MedicationCount is the number of days a medication was taken.
type MedicationCount struct {
	Medication record.Medication `json:"medication"`
	Days       int               `json:"days"`
}

// ReportResult summarises the tracked days between two calendar days.
type ReportResult struct {
	Since       time.Time                 `json:"since"`
	Until       time.Time                 `json:"until"`
	Recorded    int                       `json:"recorded"`
	Levels      []LevelCount              `json:"levels"`
	Medications []MedicationCount         `json:"medications"`
	Pending     []appointment.Appointment `json:"pending"`
	Completed   int                       `json:"completed"`
}

// Report counts levels and medications per day and lists pending
// appointments between the provided bounds, both inclusive.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return ReportResult{}, err
		}
	}
	if since.After(until) {
		since, until = until, since
	}
	res := ReportResult{Since: day.Start(since), Until: day.Start(until)}

	levels := make(map[record.Level]int)
	meds := make(map[record.Medication]int)
	for _, r := range s.Records.Between(since, until) {
		if r.Empty() {
			continue
		}
		res.Recorded++
		levels[r.Level]++
		for _, m := range r.Medications {
			meds[m]++
		}
	}
	for _, l := range record.Levels() {
		res.Levels = append(res.Levels, LevelCount{Level: l, Days: levels[l]})
	}
	for _, m := range record.Medications() {
		res.Medications = append(res.Medications, MedicationCount{Medication: m, Days: meds[m]})
	}

	for _, a := range s.Appointments.Between(since, until) {
		if a.Pending() {
			res.Pending = append(res.Pending, a)
		} else {
			res.Completed++
		}
	}
	return res, nil
}
