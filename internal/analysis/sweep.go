package analysis

import (
	"context"
	"errors"
	"math"

	"github.com/alexiusacademia/gomoc/internal/section"
	"golang.org/x/sync/errgroup"
)

// errNoWork rejects a request that carries neither a curvature range nor a
// single evaluation point.
var errNoWork = errors.New("analysis: request needs a curvature range or a point")

// FailureMode tags the governing material limit reached at a step.
type FailureMode int

const (
	FailureNone FailureMode = iota
	FailureConcreteCrushing
	FailureSteelRupture
)

func (f FailureMode) String() string {
	switch f {
	case FailureConcreteCrushing:
		return "concrete crushing"
	case FailureSteelRupture:
		return "steel rupture"
	default:
		return "none"
	}
}

// Range is an inclusive, uniformly spaced curvature range.
type Range struct {
	Start float64 // 1/mm
	End   float64 // 1/mm
	Steps int     // number of samples, both ends included
}

// Point is a single explicit (kappa, eps0) evaluation that bypasses the
// equilibrium solver.
type Point struct {
	Kappa float64
	Eps0  float64
}

// Request describes one analysis run.
type Request struct {
	TargetN float64 // N, compression positive
	Range   *Range  // full sweep when set
	Point   *Point  // single evaluation when set
	Options Options
}

// StepResult is the solved state at one curvature sample.
type StepResult struct {
	Kappa float64 // 1/mm
	Eps0  float64
	N     float64 // N
	M     float64 // N·mm

	MaxConcreteStrain float64
	MinConcreteStrain float64
	MaxSteelStrain    float64
	MinSteelStrain    float64

	Converged bool
	Failure   FailureMode
}

// Result is the terminal artifact of a run: the ordered step sequence plus
// summary fields.
type Result struct {
	Steps []StepResult

	UltimateMoment    float64 // N·mm, moment at the last computed step
	UltimateCurvature float64 // 1/mm
	FailureMode       FailureMode
	AllConverged      bool
}

// Run executes the request against the model. For a range request it sweeps
// curvature in ascending order, warm-starting each equilibrium search from
// the previous converged eps0, and stops after the first step that reaches a
// material ultimate strain (that step is kept in the output). A point request
// records the raw section response without solving.
//
// ctx is checked once per step; cancellation returns the ordered steps
// completed so far together with ctx.Err(), so a host stopping a long sweep
// still gets the partial curve.
func Run(ctx context.Context, m *section.Model, req Request) (*Result, error) {
	if req.Point != nil {
		return runPoint(m, *req.Point), nil
	}
	if req.Range == nil || req.Range.Steps < 1 {
		return nil, errNoWork
	}
	opt := req.Options.withDefaults()

	res := &Result{AllConverged: true}
	guess := 0.0
	for i := 0; i < req.Range.Steps; i++ {
		if err := ctx.Err(); err != nil {
			summarize(res)
			return res, err
		}
		kappa := sampleKappa(*req.Range, i)

		eq, converged := Solve(m, kappa, req.TargetN, guess, opt)
		step := makeStep(kappa, eq, converged, m)
		res.Steps = append(res.Steps, step)

		if converged {
			guess = eq.Eps0
		} else {
			res.AllConverged = false
			if opt.OnNonConvergence == Abort {
				break
			}
		}
		if step.Failure != FailureNone {
			break
		}
	}
	summarize(res)
	return res, nil
}

// RunParallel behaves like Run but solves the curvature steps concurrently
// with cold initial guesses, so steps carry no dependency on one another.
// The result sequence is still ordered by ascending curvature, and the
// post-failure truncation is applied after all steps complete. Because steps
// finish out of order, cancellation returns no partial result here.
func RunParallel(ctx context.Context, m *section.Model, req Request) (*Result, error) {
	if req.Point != nil {
		return runPoint(m, *req.Point), nil
	}
	if req.Range == nil || req.Range.Steps < 1 {
		return nil, errNoWork
	}
	opt := req.Options.withDefaults()

	steps := make([]StepResult, req.Range.Steps)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < req.Range.Steps; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			kappa := sampleKappa(*req.Range, i)
			eq, converged := Solve(m, kappa, req.TargetN, 0, opt)
			steps[i] = makeStep(kappa, eq, converged, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Truncate to the same step sequence a sequential sweep would emit.
	res := &Result{AllConverged: true}
	for _, step := range steps {
		res.Steps = append(res.Steps, step)
		if !step.Converged {
			res.AllConverged = false
			if opt.OnNonConvergence == Abort {
				break
			}
		}
		if step.Failure != FailureNone {
			break
		}
	}
	summarize(res)
	return res, nil
}

func runPoint(m *section.Model, p Point) *Result {
	r := m.Evaluate(p.Kappa, p.Eps0)
	eq := Equilibrium{Eps0: p.Eps0, Response: r}
	res := &Result{
		Steps:        []StepResult{makeStep(p.Kappa, eq, true, m)},
		AllConverged: true,
	}
	summarize(res)
	return res
}

func sampleKappa(rng Range, i int) float64 {
	if rng.Steps <= 1 {
		return rng.Start
	}
	return rng.Start + (rng.End-rng.Start)*float64(i)/float64(rng.Steps-1)
}

func makeStep(kappa float64, eq Equilibrium, converged bool, m *section.Model) StepResult {
	step := StepResult{
		Kappa:             kappa,
		Eps0:              eq.Eps0,
		N:                 eq.Response.N,
		M:                 eq.Response.M,
		MaxConcreteStrain: eq.Response.MaxConcreteStrain,
		MinConcreteStrain: eq.Response.MinConcreteStrain,
		MaxSteelStrain:    eq.Response.MaxSteelStrain,
		MinSteelStrain:    eq.Response.MinSteelStrain,
		Converged:         converged,
		Failure:           classify(eq.Response, m),
	}
	return step
}

// classify maps extremal strains to a failure tag. Crushing is checked first;
// when both limits are exceeded in the same step the concrete governs.
func classify(r section.Response, m *section.Model) FailureMode {
	if r.MaxConcreteStrain >= m.Concrete.EpsU {
		return FailureConcreteCrushing
	}
	if len(m.Rebar) > 0 {
		if math.Abs(r.MaxSteelStrain) >= m.Steel.EpsSU || math.Abs(r.MinSteelStrain) >= m.Steel.EpsSU {
			return FailureSteelRupture
		}
	}
	return FailureNone
}

// summarize fills the ultimate values from the last computed step. This is
// the last value before or at failure, never an extrapolation.
func summarize(res *Result) {
	if len(res.Steps) == 0 {
		return
	}
	last := res.Steps[len(res.Steps)-1]
	res.UltimateMoment = last.M
	res.UltimateCurvature = last.Kappa
	res.FailureMode = last.Failure
	for _, s := range res.Steps {
		if !s.Converged {
			res.AllConverged = false
		}
	}
}
