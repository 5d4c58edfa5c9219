package export

import (
	"fmt"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the result to a spreadsheet with a Results sheet (one row
// per step) and a Summary sheet.
func WriteXLSX(filename string, res *analysis.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const results = "Results"
	if err := f.SetSheetName("Sheet1", results); err != nil {
		return err
	}

	for col, h := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(results, cell, h); err != nil {
			return err
		}
	}
	for i, s := range res.Steps {
		values := []any{
			s.Kappa,
			s.M / 1e6,
			s.N / 1e3,
			s.Eps0,
			s.MaxConcreteStrain,
			s.MinConcreteStrain,
			s.MaxSteelStrain,
			s.MinSteelStrain,
			s.Converged,
			s.Failure.String(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(results, cell, v); err != nil {
				return err
			}
		}
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	rows := [][2]any{
		{"steps", len(res.Steps)},
		{"ultimate_moment_knm", res.UltimateMoment / 1e6},
		{"ultimate_curvature_1_per_mm", res.UltimateCurvature},
		{"failure_mode", res.FailureMode.String()},
		{"all_converged", res.AllConverged},
	}
	for i, kv := range rows {
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", i+1), kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summary, fmt.Sprintf("B%d", i+1), kv[1]); err != nil {
			return err
		}
	}

	return f.SaveAs(filename)
}
