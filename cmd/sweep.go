package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/alexiusacademia/gomoc/internal/config"
	"github.com/alexiusacademia/gomoc/internal/diagram"
	"github.com/alexiusacademia/gomoc/internal/export"
	"github.com/alexiusacademia/gomoc/internal/section"
	"github.com/spf13/cobra"
)

var (
	sweepFile       string
	sweepParallel   bool
	sweepShowChart  bool
	sweepShowSketch bool
	sweepCSVFile    string
	sweepXLSXFile   string
	sweepPDFFile    string
	sweepImageFile  string
	sweepShapeFile  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compute the moment-curvature curve for a section",
	Long: `Run the full curvature sweep defined in a JSON configuration file.

For each curvature sample the axial equilibrium is solved for the
reference strain, the resultant moment is recorded, and the sweep
stops at the first step that reaches a material ultimate strain.

Example JSON file structure:
{
  "section_name": "Rectangular 300x600",
  "materials": {"concrete_type": "C30", "steel_type": "HRB400"},
  "geometry": {
    "height": 600,
    "contour_points": [
      {"y": 0, "half_width": 150},
      {"y": 600, "half_width": 150}
    ]
  },
  "reinforcement": {
    "cover_thickness": 50,
    "layers": {
      "top":    {"count": 3, "diameter": 25},
      "middle": {"count": 0, "diameter": 0},
      "bottom": {"count": 3, "diameter": 25}
    }
  },
  "analysis": {
    "target_axial_force": 0,
    "curvature_range": {"start": 0, "end": 3e-5, "steps": 50}
  }
}

Examples:
  gomoc sweep --file section.json
  gomoc sweep -f section.json --chart --csv results.csv
  gomoc sweep -f section.json --parallel -o curve.png`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "Path to section JSON file [required]")
	sweepCmd.MarkFlagRequired("file")

	sweepCmd.Flags().BoolVar(&sweepParallel, "parallel", false, "Solve curvature steps concurrently (cold starts)")
	sweepCmd.Flags().BoolVar(&sweepShowChart, "chart", false, "Show ASCII moment-curvature chart")
	sweepCmd.Flags().BoolVar(&sweepShowSketch, "sketch", false, "Show ASCII section sketch")

	sweepCmd.Flags().StringVar(&sweepCSVFile, "csv", "", "Export step results to a CSV file")
	sweepCmd.Flags().StringVar(&sweepXLSXFile, "xlsx", "", "Export step results to an XLSX workbook")
	sweepCmd.Flags().StringVar(&sweepPDFFile, "report", "", "Export a PDF run report")
	sweepCmd.Flags().StringVarP(&sweepImageFile, "output", "o", "", "Export the curve image (png, svg, pdf)")
	sweepCmd.Flags().StringVar(&sweepShapeFile, "section-image", "", "Export a section outline image (png, svg, pdf)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(sweepFile)
	if err != nil {
		return err
	}
	model, err := cfg.BuildModel()
	if err != nil {
		return fmt.Errorf("building section: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := cfg.Request()
	run := analysis.Run
	if sweepParallel {
		run = analysis.RunParallel
	}
	res, err := run(ctx, model, req)
	if err != nil {
		return err
	}

	printSweepReport(cfg, model, res)

	// The original workflow also reported one explicit (kappa, eps0)
	// evaluation alongside the sweep when the config carried it.
	if req.Range != nil && cfg.Analysis.SingleCalculation != nil {
		p := cfg.Analysis.SingleCalculation
		r := model.Evaluate(p.Kappa, p.Epsilon0)
		fmt.Println("SINGLE CALCULATION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  κ = %.6g, ε₀ = %.6g:\tN = %.2f kN\tM = %.2f kN·m\n",
			p.Kappa, p.Epsilon0, r.N/1e3, r.M/1e6)
		w.Flush()
		fmt.Println()
	}

	if sweepShowSketch {
		fmt.Println(diagram.DrawSection(model))
	}
	if sweepShowChart {
		fmt.Println(diagram.MomentCurvatureChart(res.Steps))
	}

	return exportSweep(cfg, model, res)
}

func printSweepReport(cfg *config.Config, model *section.Model, res *analysis.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MOMENT-CURVATURE ANALYSIS - GB 50010-2010")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if cfg.SectionName != "" {
		fmt.Printf("  Section: %s\n", cfg.SectionName)
	}
	if cfg.Description != "" {
		fmt.Printf("  Description: %s\n", cfg.Description)
	}
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%s (f_cd = %.1f MPa)\n", model.Concrete.Grade, model.Concrete.Fcd)
	fmt.Fprintf(w, "  Steel:\t%s (f_yd = %.1f MPa)\n", model.Steel.Grade, model.Steel.Fyd)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Height:\t%.0f mm\n", model.Height)
	fmt.Fprintf(w, "  Concrete area:\t%.0f mm²\n", model.Area())
	fmt.Fprintf(w, "  Fibers:\t%d\n", len(model.Fibers))
	fmt.Fprintf(w, "  Rebar layers:\t%d (As = %.2f mm²)\n", len(model.Rebar), model.SteelArea())
	fmt.Fprintf(w, "  Target axial force:\t%.2f kN\n", cfg.Analysis.TargetAxialForce)
	w.Flush()
	fmt.Println()

	fmt.Println("STEPS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  κ (1/mm)\tM (kN·m)\tN (kN)\tε₀\tmax εc\tstatus\n")
	fmt.Fprintf(w, "  ────────\t────────\t──────\t──\t──────\t──────\n")
	for _, s := range res.Steps {
		status := "ok"
		if !s.Converged {
			status = "not converged"
		}
		if s.Failure != analysis.FailureNone {
			status = s.Failure.String()
		}
		fmt.Fprintf(w, "  %.6g\t%.2f\t%.2f\t%.6g\t%.6g\t%s\n",
			s.Kappa, s.M/1e6, s.N/1e3, s.Eps0, s.MaxConcreteStrain, status)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ULTIMATE MOMENT Mu = %.2f kN·m            \n", res.UltimateMoment/1e6)
	fmt.Printf("  ║  at κ = %.6g 1/mm (%s)            \n", res.UltimateCurvature, res.FailureMode)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()
}

func exportSweep(cfg *config.Config, model *section.Model, res *analysis.Result) error {
	if sweepCSVFile != "" {
		f, err := os.Create(sweepCSVFile)
		if err != nil {
			return err
		}
		if err := export.WriteCSV(f, res); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("  Results written to %s\n", sweepCSVFile)
	}
	if sweepXLSXFile != "" {
		if err := export.WriteXLSX(sweepXLSXFile, res); err != nil {
			return err
		}
		fmt.Printf("  Workbook written to %s\n", sweepXLSXFile)
	}
	if sweepPDFFile != "" {
		info := export.ReportInfo{
			SectionName: cfg.SectionName,
			Description: cfg.Description,
			Concrete:    cfg.Materials.ConcreteType,
			Steel:       cfg.Materials.SteelType,
			TargetNkN:   cfg.Analysis.TargetAxialForce,
		}
		if err := export.WritePDF(sweepPDFFile, info, res); err != nil {
			return err
		}
		fmt.Printf("  Report written to %s\n", sweepPDFFile)
	}
	if sweepImageFile != "" {
		if err := diagram.ExportCurve(res.Steps, sweepImageFile); err != nil {
			return err
		}
		fmt.Printf("  Curve image written to %s\n", sweepImageFile)
	}
	if sweepShapeFile != "" {
		if err := diagram.ExportSection(model, sweepShapeFile); err != nil {
			return err
		}
		fmt.Printf("  Section image written to %s\n", sweepShapeFile)
	}
	return nil
}
