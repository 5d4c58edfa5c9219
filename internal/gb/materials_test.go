package gb_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gomoc/internal/gb"
)

func TestResolveConcrete(t *testing.T) {
	c, err := gb.ResolveConcrete("C30")
	if err != nil {
		t.Fatalf("ResolveConcrete(C30): %v", err)
	}
	if c.Fck != 30 || c.Fcd != 30 {
		t.Errorf("C30 strengths: got fck=%g fcd=%g, want 30", c.Fck, c.Fcd)
	}
	if c.Ftd != 6 {
		t.Errorf("C30 ftd: got %g, want 6 (0.2*fck)", c.Ftd)
	}
	if c.Eps0 != gb.EpsilonC0 || c.EpsU != gb.EpsilonCU {
		t.Errorf("C30 strain limits: got eps0=%g epsu=%g", c.Eps0, c.EpsU)
	}

	// Unknown grade
	if _, err := gb.ResolveConcrete("C15"); err == nil {
		t.Errorf("expected error for unknown grade C15")
	}
}

func TestResolveSteel(t *testing.T) {
	s, err := gb.ResolveSteel("HRB400")
	if err != nil {
		t.Fatalf("ResolveSteel(HRB400): %v", err)
	}
	wantFyd := 400.0 / gb.GammaS
	if math.Abs(s.Fyd-wantFyd) > 1e-9 {
		t.Errorf("HRB400 fyd: got %g, want %g", s.Fyd, wantFyd)
	}
	if math.Abs(s.EpsY-wantFyd/gb.Es) > 1e-12 {
		t.Errorf("HRB400 yield strain: got %g", s.EpsY)
	}
	if s.EpsSU != gb.EpsilonSU {
		t.Errorf("HRB400 rupture strain: got %g, want %g", s.EpsSU, gb.EpsilonSU)
	}

	if _, err := gb.ResolveSteel("A36"); err == nil {
		t.Errorf("expected error for unknown grade A36")
	}
}

func TestGradeListings(t *testing.T) {
	cg := gb.ConcreteGrades()
	if len(cg) != 13 {
		t.Fatalf("concrete grade count: got %d, want 13", len(cg))
	}
	if cg[0] != "C20" || cg[len(cg)-1] != "C80" {
		t.Errorf("concrete grades not ordered by strength: first=%s last=%s", cg[0], cg[len(cg)-1])
	}

	sg := gb.SteelGrades()
	if len(sg) != 5 {
		t.Fatalf("steel grade count: got %d, want 5", len(sg))
	}
	if sg[0] != "HPB300" || sg[len(sg)-1] != "HRB500" {
		t.Errorf("steel grades not ordered by strength: first=%s last=%s", sg[0], sg[len(sg)-1])
	}
}

func TestBarArea(t *testing.T) {
	got := gb.BarArea(25)
	want := math.Pi * 25 * 25 / 4
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BarArea(25): got %g, want %g", got, want)
	}
}
