package export

import (
	"fmt"
	"time"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/phpdave11/gofpdf"
)

// ReportInfo carries the run metadata printed on the PDF report header.
type ReportInfo struct {
	SectionName string
	Description string
	Concrete    string
	Steel       string
	TargetNkN   float64
}

// WritePDF writes a one-document run report: header, summary block and the
// step table (truncated is never needed; a sweep is at most a few hundred
// rows).
func WritePDF(filename string, info ReportInfo, res *analysis.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Moment-Curvature Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Section: %s", info.SectionName))
	pdf.Ln(6)
	if info.Description != "" {
		pdf.Cell(0, 6, info.Description)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Materials: %s / %s", info.Concrete, info.Steel))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Target axial force: %.2f kN", info.TargetNkN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ultimate moment: %.2f kN·m", res.UltimateMoment/1e6))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Ultimate curvature: %.6g 1/mm", res.UltimateCurvature))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Failure mode: %s", res.FailureMode))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Steps: %d, all converged: %t", len(res.Steps), res.AllConverged))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Steps")
	pdf.Ln(8)

	widths := []float64{30, 28, 25, 28, 28, 25}
	headers := []string{"kappa (1/mm)", "M (kN·m)", "N (kN)", "eps0", "max eps_c", "status"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range res.Steps {
		status := "ok"
		if !s.Converged {
			status = "not converged"
		}
		if s.Failure != analysis.FailureNone {
			status = s.Failure.String()
		}
		cells := []string{
			fmt.Sprintf("%.6g", s.Kappa),
			fmt.Sprintf("%.2f", s.M/1e6),
			fmt.Sprintf("%.2f", s.N/1e3),
			fmt.Sprintf("%.6g", s.Eps0),
			fmt.Sprintf("%.6g", s.MaxConcreteStrain),
			status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(filename)
}
