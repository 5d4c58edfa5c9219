// Package analysis contains the axial equilibrium solver and the curvature
// sweep controller that together produce the moment-curvature relationship
// of a discretized section.
package analysis

import (
	"math"

	"github.com/alexiusacademia/gomoc/internal/section"
)

// NonConvergencePolicy decides what a sweep does with a step whose
// equilibrium search ran out of iterations.
type NonConvergencePolicy int

const (
	// ContinueFlagged records the step with Converged=false and keeps
	// sweeping toward higher curvatures.
	ContinueFlagged NonConvergencePolicy = iota
	// Abort records the flagged step and stops the sweep there.
	Abort
)

// Options tunes the equilibrium solver and the sweep policy.
type Options struct {
	// ForceTolerance is the absolute axial force tolerance in N. The
	// effective tolerance is max(ForceTolerance, RelTolerance*|targetN|),
	// so a zero target still gets a finite floor.
	ForceTolerance float64
	// RelTolerance scales the tolerance with the target force magnitude.
	RelTolerance float64
	// MaxIterations caps the equilibrium search per curvature step.
	MaxIterations int
	// OnNonConvergence selects the sweep policy for flagged steps.
	OnNonConvergence NonConvergencePolicy
}

// DefaultOptions returns the solver settings used when the caller leaves
// Options zero-valued.
func DefaultOptions() Options {
	return Options{
		ForceTolerance: 1.0, // 1 N
		RelTolerance:   1e-4,
		MaxIterations:  100,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ForceTolerance <= 0 {
		o.ForceTolerance = d.ForceTolerance
	}
	if o.RelTolerance <= 0 {
		o.RelTolerance = d.RelTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	return o
}

func (o Options) tolerance(targetN float64) float64 {
	return math.Max(o.ForceTolerance, o.RelTolerance*math.Abs(targetN))
}

// strainFloor is the eps0 bracket width below which further refinement is
// numerically meaningless.
const strainFloor = 1e-12

// Equilibrium is the solved state at one curvature.
type Equilibrium struct {
	Eps0     float64
	Response section.Response
}

// Solve finds the reference strain eps0 at which the section's axial force
// equals targetN within tolerance, for a fixed curvature. The axial force is
// continuous and rises with eps0 under these material laws, so the search
// first expands a bracket around the initial guess and then closes it with
// regula falsi. No derivative is needed.
//
// The second return value reports convergence; on false the best iterate so
// far is still returned so the caller can record it.
func Solve(m *section.Model, kappa, targetN, guess float64, opt Options) (Equilibrium, bool) {
	opt = opt.withDefaults()
	tol := opt.tolerance(targetN)

	f := func(eps0 float64) (section.Response, float64) {
		r := m.Evaluate(kappa, eps0)
		return r, r.N - targetN
	}

	best, residual := f(guess)
	eq := Equilibrium{Eps0: guess, Response: best}
	if math.Abs(residual) <= tol {
		return eq, true
	}

	// Expand a bracket [lo, hi] with f(lo) < 0 < f(hi), stepping away from
	// the guess in the direction the residual demands. N rises with eps0.
	lo, flo := guess, residual
	hi, fhi := guess, residual
	step := 1e-4
	iters := 0
	for flo > 0 && iters < opt.MaxIterations {
		lo -= step
		_, flo = f(lo)
		step *= 2
		iters++
	}
	step = 1e-4
	for fhi < 0 && iters < opt.MaxIterations {
		hi += step
		_, fhi = f(hi)
		step *= 2
		iters++
	}
	if flo > 0 || fhi < 0 {
		return eq, false
	}

	for ; iters < opt.MaxIterations; iters++ {
		// Regula falsi iterate; bisection fallback keeps the step sane
		// when the secant degenerates.
		var mid float64
		if fhi != flo {
			mid = hi - fhi*(hi-lo)/(fhi-flo)
		}
		if !(mid > lo && mid < hi) {
			mid = (lo + hi) / 2
		}
		r, fm := f(mid)
		if math.Abs(fm) < math.Abs(residual) {
			eq = Equilibrium{Eps0: mid, Response: r}
			residual = fm
		}
		if math.Abs(fm) <= tol {
			return Equilibrium{Eps0: mid, Response: r}, true
		}
		if fm < 0 {
			lo, flo = mid, fm
		} else {
			hi, fhi = mid, fm
		}
		if hi-lo < strainFloor {
			// A fully collapsed bracket is only a solution when the best
			// iterate actually balances the axial force.
			return eq, math.Abs(residual) <= tol
		}
	}
	return eq, false
}
