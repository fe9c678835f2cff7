package ui

import (
	"math/rand"
	"time"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/day"
	"tableflip.dev/allergy/pkg/record"
)

// Demo builds a plausible season of data for the given months of now's year.
// The same seed always yields the same data.
func Demo(now time.Time, season []time.Month, seed int64) ([]record.DayRecord, []appointment.Appointment) {
	r := rand.New(rand.NewSource(seed))
	year := now.Year()
	today := day.Start(now)

	var recs []record.DayRecord
	var apps []appointment.Appointment
	for _, m := range season {
		for d := 1; d <= day.DaysIn(year, m); d++ {
			on := day.Date(year, m, d)
			if on.After(today) {
				break
			}
			if r.Intn(5) == 0 {
				continue
			}
			level := record.Levels()[r.Intn(len(record.Levels()))]
			var meds []record.Medication
			for _, med := range record.Medications() {
				if r.Intn(int(level)+2) > 1 {
					meds = append(meds, med)
				}
			}
			recs = append(recs, record.DayRecord{Date: day.On(on.Add(12 * time.Hour)), Level: level, Medications: meds})
		}

		on := day.Date(year, m, 1+r.Intn(day.DaysIn(year, m)))
		status := appointment.Pending
		if on.Before(today) {
			status = appointment.Completed
		}
		apps = append(apps, appointment.Appointment{
			ID:          appointment.NewID(),
			Date:        day.On(on.Add(12 * time.Hour)),
			Description: demoAppointments[r.Intn(len(demoAppointments))],
			Status:      status,
		})
	}
	return recs, apps
}

var demoAppointments = []string{
	"Alergólogo",
	"Pruebas cutáneas",
	"Recoger receta",
	"Revisión neumología",
	"Vacuna",
}
