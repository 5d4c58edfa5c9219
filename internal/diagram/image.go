package diagram

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/alexiusacademia/gomoc/internal/section"
)

// ExportCurve writes the moment-curvature curve to an image file. The format
// follows the file extension (png, svg, pdf). The failure step, when present,
// is marked with a scatter glyph.
func ExportCurve(steps []analysis.StepResult, filename string) error {
	if len(steps) == 0 {
		return fmt.Errorf("no steps to export")
	}
	if err := checkFormat(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Moment-Curvature Relationship"
	p.X.Label.Text = "Curvature (1/mm)"
	p.Y.Label.Text = "Moment (kN·m)"

	pts := make(plotter.XYs, len(steps))
	for i, s := range steps {
		pts[i] = plotter.XY{X: s.Kappa, Y: s.M / 1e6}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if last := steps[len(steps)-1]; last.Failure != analysis.FailureNone {
		mark, err := plotter.NewScatter(plotter.XYs{{X: last.Kappa, Y: last.M / 1e6}})
		if err != nil {
			return err
		}
		mark.GlyphStyle.Shape = draw.CircleGlyph{}
		mark.GlyphStyle.Radius = vg.Points(4)
		mark.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		p.Add(mark)
		p.Legend.Add(last.Failure.String(), mark)
	}

	return p.Save(7*vg.Inch, 5*vg.Inch, filename)
}

// ExportSection writes the section outline with rebar layers to an image
// file. The symmetric contour is mirrored about the vertical axis.
func ExportSection(m *section.Model, filename string) error {
	if err := checkFormat(filename); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "y (mm)"

	outline := make(plotter.XYs, 0, 2*len(m.Fibers)+1)
	for _, f := range m.Fibers {
		outline = append(outline, plotter.XY{X: f.Width / 2, Y: f.Y})
	}
	for i := len(m.Fibers) - 1; i >= 0; i-- {
		f := m.Fibers[i]
		outline = append(outline, plotter.XY{X: -f.Width / 2, Y: f.Y})
	}
	outline = append(outline, outline[0])

	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	if len(m.Rebar) > 0 {
		pts := make(plotter.XYs, len(m.Rebar))
		for i, b := range m.Rebar {
			pts[i] = plotter.XY{X: 0, Y: b.Y}
		}
		bars, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		bars.GlyphStyle.Shape = draw.CircleGlyph{}
		bars.GlyphStyle.Radius = vg.Points(3)
		bars.GlyphStyle.Color = color.RGBA{R: 178, A: 255}
		p.Add(bars)
	}

	return p.Save(5*vg.Inch, 6*vg.Inch, filename)
}

func checkFormat(filename string) error {
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return nil
	default:
		return fmt.Errorf("unsupported image format %q (use .png, .svg or .pdf)", filepath.Ext(filename))
	}
}
