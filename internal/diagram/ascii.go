package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/alexiusacademia/gomoc/internal/section"
	"github.com/guptarohit/asciigraph"
)

// MomentCurvatureChart renders the moment-curvature curve as a terminal
// chart. Moments are plotted in kN·m.
func MomentCurvatureChart(steps []analysis.StepResult) string {
	if len(steps) == 0 {
		return "  (no steps to plot)\n"
	}
	moments := make([]float64, len(steps))
	for i, s := range steps {
		moments[i] = s.M / 1e6
	}
	caption := fmt.Sprintf("Moment (kN·m) vs curvature step, κ = %.6g … %.6g 1/mm",
		steps[0].Kappa, steps[len(steps)-1].Kappa)

	var sb strings.Builder
	sb.WriteString("\n  MOMENT-CURVATURE CURVE\n")
	sb.WriteString("  ──────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(moments,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	if last := steps[len(steps)-1]; last.Failure != analysis.FailureNone {
		sb.WriteString(fmt.Sprintf("\n  Terminated by %s at κ = %.6g 1/mm\n", last.Failure, last.Kappa))
	}
	return sb.String()
}

// DrawSection sketches the discretized section: the contour as a centered
// width profile with the rebar layers marked.
func DrawSection(m *section.Model) string {
	const (
		rows     = 20
		maxChars = 48
	)

	var maxWidth float64
	for _, f := range m.Fibers {
		if f.Width > maxWidth {
			maxWidth = f.Width
		}
	}
	if maxWidth <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n  SECTION (top to bottom)\n")
	sb.WriteString("  ───────────────────────\n")

	half := m.Height / 2
	rowHeight := m.Height / rows
	for r := 0; r < rows; r++ {
		// Row r spans [yTop - rowHeight, yTop]; sample at its middle.
		y := half - (float64(r)+0.5)*rowHeight
		w := widthAt(m, y)
		chars := int(w / maxWidth * maxChars)
		if chars < 1 {
			chars = 1
		}
		pad := (maxChars - chars) / 2

		line := strings.Repeat("█", chars)
		if marker := rebarInRow(m, y, rowHeight); marker {
			line = "●" + strings.Repeat("█", maxInt(chars-2, 0)) + "●"
		}
		sb.WriteString(fmt.Sprintf("  %s%s\n", strings.Repeat(" ", pad), line))
	}

	sb.WriteString(fmt.Sprintf("\n  Height %.0f mm, %d fibers, %d rebar layers, As = %.0f mm²\n",
		m.Height, len(m.Fibers), len(m.Rebar), m.SteelArea()))
	return sb.String()
}

// widthAt returns the width of the fiber whose band contains y.
func widthAt(m *section.Model, y float64) float64 {
	best := m.Fibers[0]
	for _, f := range m.Fibers {
		if abs(f.Y-y) < abs(best.Y-y) {
			best = f
		}
	}
	return best.Width
}

func rebarInRow(m *section.Model, y, rowHeight float64) bool {
	for _, b := range m.Rebar {
		if abs(b.Y-y) <= rowHeight/2 {
			return true
		}
	}
	return false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
