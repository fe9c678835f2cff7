package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/allergy/pkg/record"
)

// Key prints the legend for the calendar grid.
func (pp *PrettyPrint) Key() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Color"), bold.Sprint("Síntomas"))
	for _, l := range record.Levels() {
		tbl.AddRow(LevelColor(l).Sprint(" "+l.Tag()+" "), l.String())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Inicial"), bold.Sprint("Medicamento"))
	for _, m := range record.Medications() {
		tbl.AddRow(color.New(color.FgCyan).Sprint(m.Initial()), string(m))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Marca"), bold.Sprint("Cita"))
	tbl.AddRow(color.New(color.FgHiBlue, color.Bold).Sprint("•"), "pendiente")
	tbl.AddRow(color.New(color.FgGreen).Sprint("✓"), "completada")
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}
