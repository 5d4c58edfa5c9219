// Package material implements the GB 50010-2010 stress-strain laws used by
// the section response engine.
//
// Sign convention throughout: compression is positive, for strain, stress and
// axial force alike. Every function is pure and never panics; out-of-domain
// input is reported through the failed flag together with the stress at the
// domain boundary, so callers can react instead of crashing.
package material

import (
	"math"

	"github.com/alexiusacademia/gomoc/internal/gb"
)

// ConcreteStress returns the concrete stress (MPa) at the given strain and
// whether the strain is past the ultimate compressive limit.
//
// Compression (eps > 0): parabolic ascending branch up to Eps0, then a linear
// descending branch to EpsU. Past EpsU the section has crushed; the stress at
// the EpsU boundary is returned with failed=true.
// Tension (eps < 0): linear up to the cracking strain, then a linear
// descending branch to EpsTU, zero once fully cracked. Cracking is not a
// failure. Every branch boundary is continuous, which keeps the integrated
// axial force a continuous function of the reference strain and lets the
// equilibrium search close onto tight force tolerances.
func ConcreteStress(c gb.Concrete, eps float64) (stress float64, failed bool) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, true
	}
	if eps >= 0 {
		return concreteCompression(c, eps)
	}
	return concreteTension(c, -eps), false
}

func concreteCompression(c gb.Concrete, eps float64) (float64, bool) {
	switch {
	case eps <= c.Eps0:
		eta := eps / c.Eps0
		return c.Fcd * (2*eta - eta*eta), false
	case eps <= c.EpsU:
		return c.Fcd * (1 - 0.8*(eps-c.Eps0)/(c.EpsU-c.Eps0)), false
	default:
		// Crushed. Report the boundary stress so the equilibrium
		// search still sees a finite, continuous response.
		return c.Fcd * 0.2, true
	}
}

// concreteTension takes a positive tensile strain magnitude and returns a
// negative (tensile) stress.
func concreteTension(c gb.Concrete, eps float64) float64 {
	switch {
	case eps <= c.EpsT0:
		return -c.Ec * eps
	case eps <= c.EpsTU:
		// Softens from the cracking stress Ec*EpsT0 down to zero at
		// EpsTU, meeting both neighbouring branches exactly.
		return -c.Ec * c.EpsT0 * (c.EpsTU - eps) / (c.EpsTU - c.EpsT0)
	default:
		// Fully cracked.
		return 0
	}
}

// SteelStress returns the reinforcement stress (MPa) at the given strain and
// whether the strain is past the rupture limit. The law is elastic-perfectly-
// plastic and symmetric in tension and compression.
func SteelStress(s gb.Steel, eps float64) (stress float64, failed bool) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, true
	}
	sigma := s.Es * eps
	if sigma > s.Fyd {
		sigma = s.Fyd
	} else if sigma < -s.Fyd {
		sigma = -s.Fyd
	}
	if math.Abs(eps) > s.EpsSU {
		return sigma, true
	}
	return sigma, false
}
