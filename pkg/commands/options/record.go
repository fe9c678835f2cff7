package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/allergy/pkg/record"
)

// RecordOptions are the day record fields settable from the command line.
type RecordOptions struct {
	Level       string
	Medications []string
	Toggle      []string
	Appointment string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Level, "level", "l", "",
		"Symptom level: green, yellow, orange, red (or verde, amarillo, naranja, rojo, 1-4, none).")
	cmd.Flags().StringSliceVarP(&o.Medications, "med", "m", nil,
		"Medications taken, replacing the day's list: Bilaxten, Relvar, Ventolin, Dymista or their initials.")
	cmd.Flags().StringSliceVarP(&o.Toggle, "toggle", "t", nil,
		"Medications to toggle on or off.")
	cmd.Flags().StringVarP(&o.Appointment, "appointment", "a", "",
		"Appointment for the day. A blank value leaves any appointment alone.")
}

// GetLevel returns nil when --level was not given.
func (o *RecordOptions) GetLevel(cmd *cobra.Command) (*record.Level, error) {
	if !cmd.Flags().Changed("level") {
		return nil, nil
	}
	l, err := record.ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetMedications returns the replacement list and whether --med was given.
func (o *RecordOptions) GetMedications(cmd *cobra.Command) ([]record.Medication, bool, error) {
	if !cmd.Flags().Changed("med") {
		return nil, false, nil
	}
	meds, err := parseMedications(o.Medications)
	return meds, true, err
}

func (o *RecordOptions) GetToggle() ([]record.Medication, error) {
	return parseMedications(o.Toggle)
}

func parseMedications(in []string) ([]record.Medication, error) {
	out := make([]record.Medication, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		m, err := record.ParseMedication(v)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
