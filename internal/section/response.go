package section

import (
	"math"

	"github.com/alexiusacademia/gomoc/internal/material"
)

// Response is the integrated section state at one (kappa, eps0) pair.
// Compression is positive for strain, stress, force and moment alike.
type Response struct {
	N float64 // N, resultant axial force
	M float64 // N·mm, resultant moment about mid-height

	MaxConcreteStrain float64 // most compressive concrete fiber strain
	MinConcreteStrain float64 // most tensile concrete fiber strain
	MaxSteelStrain    float64 // most compressive rebar strain
	MinSteelStrain    float64 // most tensile rebar strain

	// Failed is set when any material evaluation hit its ultimate strain
	// or produced a non-finite stress.
	Failed bool
}

// Evaluate integrates stresses over all fibers and rebar points under the
// plane-section strain field eps(y) = eps0 + kappa*y. It is a pure function
// of its inputs and always returns a value; material failure is reported
// through Response.Failed, never by panicking.
func (m *Model) Evaluate(kappa, eps0 float64) Response {
	r := Response{
		MaxConcreteStrain: math.Inf(-1),
		MinConcreteStrain: math.Inf(1),
		MaxSteelStrain:    math.Inf(-1),
		MinSteelStrain:    math.Inf(1),
	}

	for _, f := range m.Fibers {
		eps := eps0 + kappa*f.Y
		stress, failed := material.ConcreteStress(m.Concrete, eps)
		if failed || math.IsNaN(stress) || math.IsInf(stress, 0) {
			r.Failed = true
		}
		r.N += stress * f.Area
		r.M += stress * f.Area * f.Y
		if eps > r.MaxConcreteStrain {
			r.MaxConcreteStrain = eps
		}
		if eps < r.MinConcreteStrain {
			r.MinConcreteStrain = eps
		}
	}

	for _, b := range m.Rebar {
		eps := eps0 + kappa*b.Y
		stress, failed := material.SteelStress(m.Steel, eps)
		if failed || math.IsNaN(stress) || math.IsInf(stress, 0) {
			r.Failed = true
		}
		r.N += stress * b.Area
		r.M += stress * b.Area * b.Y
		if eps > r.MaxSteelStrain {
			r.MaxSteelStrain = eps
		}
		if eps < r.MinSteelStrain {
			r.MinSteelStrain = eps
		}
	}

	if len(m.Rebar) == 0 {
		r.MaxSteelStrain = 0
		r.MinSteelStrain = 0
	}
	return r
}

// Area returns the total discretized concrete area (mm²).
func (m *Model) Area() float64 {
	var a float64
	for _, f := range m.Fibers {
		a += f.Area
	}
	return a
}

// SteelArea returns the total reinforcement area (mm²).
func (m *Model) SteelArea() float64 {
	var a float64
	for _, b := range m.Rebar {
		a += b.Area
	}
	return a
}
