package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomoc/internal/analysis"
	"github.com/alexiusacademia/gomoc/internal/config"
)

const validConfig = `{
  "section_name": "Test Rectangle",
  "description": "300x600 reference section",
  "version": "1.0",
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
      "top": {"count": 3, "diameter": 25},
      "middle": {"count": 0, "diameter": 0},
      "bottom": {"count": 3, "diameter": 25, "cover_override": 60}
    }
  },
  "analysis": {
    "target_axial_force": 500,
    "curvature_range": {"start": 0, "end": 3e-5, "steps": 50},
    "single_calculation": {"kappa": 7e-7, "epsilon0": 0.00015}
  }
}`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "section.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SectionName != "Test Rectangle" {
		t.Errorf("section_name: got %q", cfg.SectionName)
	}
	if cfg.Reinforcement.Layers.Bottom.CoverOverride == nil ||
		*cfg.Reinforcement.Layers.Bottom.CoverOverride != 60 {
		t.Errorf("bottom cover override not parsed")
	}

	m, err := cfg.BuildModel()
	if err != nil {
		t.Fatalf("BuildModel: %v", err)
	}
	if m.Concrete.Grade != "C30" || m.Steel.Grade != "HRB400" {
		t.Errorf("grades not resolved: %s / %s", m.Concrete.Grade, m.Steel.Grade)
	}
	if len(m.Rebar) != 2 {
		t.Errorf("rebar layers: got %d, want 2 (middle has zero count)", len(m.Rebar))
	}

	req := cfg.Request()
	if req.TargetN != 500e3 {
		t.Errorf("target force: got %g N, want 500e3 (kN converted to N)", req.TargetN)
	}
	if req.Range == nil || req.Range.Steps != 50 {
		t.Errorf("curvature range not mapped: %+v", req.Range)
	}
	if req.Options.OnNonConvergence != analysis.ContinueFlagged {
		t.Errorf("default policy should be continue")
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"materials":`},
		{"unknown concrete grade", `{
			"materials": {"concrete_type": "C99", "steel_type": "HRB400"},
			"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
			"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
			"analysis": {"target_axial_force": 0, "curvature_range": {"start":0,"end":1e-5,"steps":10}}}`},
		{"missing middle layer", `{
			"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
			"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
			"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"bottom":{"count":0}}},
			"analysis": {"target_axial_force": 0, "curvature_range": {"start":0,"end":1e-5,"steps":10}}}`},
		{"no range and no point", `{
			"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
			"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
			"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
			"analysis": {"target_axial_force": 0}}`},
		{"descending range", `{
			"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
			"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
			"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
			"analysis": {"target_axial_force": 0, "curvature_range": {"start":1e-5,"end":0,"steps":10}}}`},
		{"negative fiber count", `{
				"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
				"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
				"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
				"analysis": {"target_axial_force": 0, "n_fibers": -5, "curvature_range": {"start":0,"end":1e-5,"steps":10}}}`},
		{"bad policy", `{
			"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
			"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
			"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
			"analysis": {"target_axial_force": 0, "curvature_range": {"start":0,"end":1e-5,"steps":10}, "on_non_convergence": "retry"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tc.body)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected error for a missing file")
	}
}

func TestRequestPointMode(t *testing.T) {
	body := `{
		"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
		"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
		"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
		"analysis": {"target_axial_force": 0, "single_calculation": {"kappa": 7e-7, "epsilon0": 1.5e-4}}}`
	cfg, err := config.Load(writeConfig(t, body))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	req := cfg.Request()
	if req.Range != nil || req.Point == nil {
		t.Fatalf("expected a point request, got %+v", req)
	}
	if req.Point.Kappa != 7e-7 || req.Point.Eps0 != 1.5e-4 {
		t.Errorf("point values not mapped: %+v", req.Point)
	}
}

func TestAbortPolicyMapping(t *testing.T) {
	body := `{
		"materials": {"concrete_type": "C30", "steel_type": "HRB400"},
		"geometry": {"height": 600, "contour_points": [{"y":0,"half_width":150},{"y":600,"half_width":150}]},
		"reinforcement": {"cover_thickness": 50, "layers": {"top":{"count":0},"middle":{"count":0},"bottom":{"count":0}}},
		"analysis": {"target_axial_force": 0, "curvature_range": {"start":0,"end":1e-5,"steps":10}, "on_non_convergence": "abort"}}`
	cfg, err := config.Load(writeConfig(t, body))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Request().Options.OnNonConvergence != analysis.Abort {
		t.Errorf("abort policy not mapped")
	}
}
