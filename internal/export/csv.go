// Package export writes analysis results to tabular and document formats.
// The engine itself performs no I/O; these writers consume the finished
// result sequence.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexiusacademia/gomoc/internal/analysis"
)

var csvHeader = []string{
	"curvature_1_per_mm",
	"moment_knm",
	"axial_force_kn",
	"epsilon0",
	"max_concrete_strain",
	"min_concrete_strain",
	"max_steel_strain",
	"min_steel_strain",
	"converged",
	"failure_mode",
}

// WriteCSV writes one row per curvature step. Moments are in kN·m and forces
// in kN, matching the CLI reports.
func WriteCSV(w io.Writer, res *analysis.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range res.Steps {
		row := []string{
			fmt.Sprintf("%.8g", s.Kappa),
			fmt.Sprintf("%.4f", s.M/1e6),
			fmt.Sprintf("%.4f", s.N/1e3),
			fmt.Sprintf("%.8g", s.Eps0),
			fmt.Sprintf("%.6g", s.MaxConcreteStrain),
			fmt.Sprintf("%.6g", s.MinConcreteStrain),
			fmt.Sprintf("%.6g", s.MaxSteelStrain),
			fmt.Sprintf("%.6g", s.MinSteelStrain),
			fmt.Sprintf("%t", s.Converged),
			s.Failure.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
