// Package config loads and validates the JSON run configuration consumed by
// the gomoc CLI. Structural validation happens here; geometry invariants are
// re-checked by the section discretizer.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/alexiusacademia/gomoc/internal/gb"
	"github.com/alexiusacademia/gomoc/internal/section"
)

// Config is one analysis run as described on disk.
type Config struct {
	SectionName string `json:"section_name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`

	Materials     Materials        `json:"materials"`
	Geometry      section.Geometry `json:"geometry"`
	Reinforcement Reinforcement    `json:"reinforcement"`
	Analysis      Analysis         `json:"analysis"`
}

// Materials names the concrete and steel grades for the run.
type Materials struct {
	ConcreteType string `json:"concrete_type"`
	SteelType    string `json:"steel_type"`
}

// Reinforcement mirrors the on-disk layer layout. All three layers must be
// present; a layer may carry a zero bar count.
type Reinforcement struct {
	CoverThickness float64 `json:"cover_thickness"`
	Layers         Layers  `json:"layers"`
}

// Layers uses pointers so that a missing layer key is distinguishable from
// an explicit zero-count layer.
type Layers struct {
	Top    *section.Layer `json:"top"`
	Middle *section.Layer `json:"middle"`
	Bottom *section.Layer `json:"bottom"`
}

// Analysis holds the run parameters: target axial force (kN, compression
// positive), either a curvature range or a single (kappa, eps0) point, the
// optional fiber count and the non-convergence policy.
type Analysis struct {
	TargetAxialForce  float64         `json:"target_axial_force"`
	NFibers           int             `json:"n_fibers,omitempty"`
	CurvatureRange    *CurvatureRange `json:"curvature_range,omitempty"`
	SingleCalculation *SingleCalc     `json:"single_calculation,omitempty"`
	OnNonConvergence  string          `json:"on_non_convergence,omitempty"` // "continue" (default) or "abort"
}

// CurvatureRange is the inclusive sweep definition. Curvatures are in 1/mm.
type CurvatureRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Steps int     `json:"steps"`
}

// SingleCalc is an explicit single-point evaluation.
type SingleCalc struct {
	Kappa    float64 `json:"kappa"`
	Epsilon0 float64 `json:"epsilon0"`
}

// Load reads, parses and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the structural completeness of the configuration. Geometry
// invariants (contour ordering, widths, span) are left to section.Build.
func (c *Config) Validate() error {
	if c.Materials.ConcreteType == "" || c.Materials.SteelType == "" {
		return fmt.Errorf("materials: concrete_type and steel_type are required")
	}
	if _, err := gb.ResolveConcrete(c.Materials.ConcreteType); err != nil {
		return err
	}
	if _, err := gb.ResolveSteel(c.Materials.SteelType); err != nil {
		return err
	}
	if len(c.Geometry.Contour) < 2 {
		return fmt.Errorf("geometry: contour_points needs at least 2 entries")
	}
	if c.Reinforcement.Layers.Top == nil || c.Reinforcement.Layers.Middle == nil || c.Reinforcement.Layers.Bottom == nil {
		return fmt.Errorf("reinforcement: layers top, middle and bottom are all required")
	}
	if f := c.Analysis.NFibers; f != 0 && f < 2 {
		return fmt.Errorf("analysis: n_fibers must be at least 2 when set, got %d", f)
	}
	if c.Analysis.CurvatureRange == nil && c.Analysis.SingleCalculation == nil {
		return fmt.Errorf("analysis: either curvature_range or single_calculation is required")
	}
	if r := c.Analysis.CurvatureRange; r != nil {
		if r.Steps < 1 {
			return fmt.Errorf("analysis: curvature_range.steps must be at least 1, got %d", r.Steps)
		}
		if r.End < r.Start {
			return fmt.Errorf("analysis: curvature_range end %g is below start %g", r.End, r.Start)
		}
	}
	switch c.Analysis.OnNonConvergence {
	case "", "continue", "abort":
	default:
		return fmt.Errorf("analysis: on_non_convergence must be \"continue\" or \"abort\", got %q", c.Analysis.OnNonConvergence)
	}
	return nil
}

// BuildModel resolves the material grades and discretizes the section.
func (c *Config) BuildModel() (*section.Model, error) {
	concrete, err := gb.ResolveConcrete(c.Materials.ConcreteType)
	if err != nil {
		return nil, err
	}
	steel, err := gb.ResolveSteel(c.Materials.SteelType)
	if err != nil {
		return nil, err
	}
	reinf := section.Reinforcement{
		Cover:  c.Reinforcement.CoverThickness,
		Top:    *c.Reinforcement.Layers.Top,
		Middle: *c.Reinforcement.Layers.Middle,
		Bottom: *c.Reinforcement.Layers.Bottom,
	}
	return section.Build(c.Geometry, reinf, concrete, steel, c.Analysis.NFibers)
}

// Request converts the analysis block into an engine request. The target
// axial force is given in kN on disk and in N inside the engine.
func (c *Config) Request() analysis.Request {
	req := analysis.Request{
		TargetN: c.Analysis.TargetAxialForce * 1000,
	}
	if r := c.Analysis.CurvatureRange; r != nil {
		req.Range = &analysis.Range{Start: r.Start, End: r.End, Steps: r.Steps}
	} else if p := c.Analysis.SingleCalculation; p != nil {
		req.Point = &analysis.Point{Kappa: p.Kappa, Eps0: p.Epsilon0}
	}
	if c.Analysis.OnNonConvergence == "abort" {
		req.Options.OnNonConvergence = analysis.Abort
	}
	return req
}
