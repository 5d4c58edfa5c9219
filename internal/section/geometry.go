package section

import (
	"github.com/alexiusacademia/gomoc/internal/gb"
)

// DefaultFiberCount is the number of concrete strips used when the caller
// does not ask for a specific discretization density.
const DefaultFiberCount = 50

// Build validates the section description and discretizes it into a Model.
// The contour may be given with y measured from the section base (0..height)
// or symmetric about mid-height (-h/2..h/2); either way the model is
// normalized so y = 0 is the mid-height reference fiber.
//
// Build runs exactly once per analysis. On any validation failure it returns
// a *ValidationError and no partial model.
func Build(geom Geometry, reinf Reinforcement, concrete gb.Concrete, steel gb.Steel, nFibers int) (*Model, error) {
	if nFibers <= 0 {
		nFibers = DefaultFiberCount
	}
	if err := validate(geom, reinf, nFibers); err != nil {
		return nil, err
	}

	// Shift the contour so the mid-height sits at y = 0.
	minY := geom.Contour[0].Y
	maxY := geom.Contour[len(geom.Contour)-1].Y
	shift := (minY + maxY) / 2
	ys := make([]float64, len(geom.Contour))
	hws := make([]float64, len(geom.Contour))
	for i, p := range geom.Contour {
		ys[i] = p.Y - shift
		hws[i] = p.HalfWidth
	}
	half := geom.Height / 2

	m := &Model{
		Height:   geom.Height,
		Fibers:   make([]Fiber, 0, nFibers),
		Concrete: concrete,
		Steel:    steel,
	}

	// Equal-height strips over the full section, half width interpolated
	// linearly between the bracketing contour points at each strip centroid.
	dy := geom.Height / float64(nFibers)
	for i := 0; i < nFibers; i++ {
		yc := -half + (float64(i)+0.5)*dy
		hw := interpHalfWidth(ys, hws, yc)
		m.Fibers = append(m.Fibers, Fiber{
			Y:     yc,
			Width: 2 * hw,
			Area:  2 * hw * dy,
		})
	}

	// Each layer becomes a single point mass at its effective elevation.
	// Fiber areas are deliberately not reduced by the displaced bar area.
	addLayer := func(l Layer, y float64) {
		if l.Count == 0 {
			return
		}
		m.Rebar = append(m.Rebar, RebarPoint{
			Y:    y,
			Area: float64(l.Count) * gb.BarArea(l.Diameter),
		})
	}
	addLayer(reinf.Top, half-cover(reinf.Top, reinf.Cover))
	addLayer(reinf.Bottom, -half+cover(reinf.Bottom, reinf.Cover))
	middleY := 0.0
	if reinf.Middle.CoverOverride != nil {
		middleY = -half + *reinf.Middle.CoverOverride
	}
	addLayer(reinf.Middle, middleY)

	return m, nil
}

func cover(l Layer, def float64) float64 {
	if l.CoverOverride != nil {
		return *l.CoverOverride
	}
	return def
}

func validate(geom Geometry, reinf Reinforcement, nFibers int) error {
	if geom.Height <= 0 {
		return validationErrorf("section height must be positive, got %g", geom.Height)
	}
	if len(geom.Contour) < 2 {
		return validationErrorf("contour needs at least 2 points, got %d", len(geom.Contour))
	}
	for i, p := range geom.Contour {
		if i > 0 && p.Y <= geom.Contour[i-1].Y {
			return validationErrorf("contour y must be strictly increasing at point %d", i+1)
		}
		if p.HalfWidth <= 0 {
			return validationErrorf("contour half_width must be positive at point %d", i+1)
		}
	}
	span := geom.Contour[len(geom.Contour)-1].Y - geom.Contour[0].Y
	if diff := span - geom.Height; diff > 1e-6 || diff < -1e-6 {
		return validationErrorf("contour spans %g mm but section height is %g mm", span, geom.Height)
	}
	if reinf.Cover < 0 {
		return validationErrorf("cover thickness must not be negative, got %g", reinf.Cover)
	}
	if nFibers < 2 {
		return validationErrorf("fiber count must be at least 2, got %d", nFibers)
	}
	for _, l := range []struct {
		name  string
		layer Layer
	}{{"top", reinf.Top}, {"middle", reinf.Middle}, {"bottom", reinf.Bottom}} {
		if l.layer.Count < 0 {
			return validationErrorf("%s layer bar count must not be negative, got %d", l.name, l.layer.Count)
		}
		if l.layer.Count > 0 && l.layer.Diameter <= 0 {
			return validationErrorf("%s layer bar diameter must be positive, got %g", l.name, l.layer.Diameter)
		}
		if l.layer.CoverOverride != nil && *l.layer.CoverOverride < 0 {
			return validationErrorf("%s layer cover override must not be negative, got %g", l.name, *l.layer.CoverOverride)
		}
	}
	return nil
}

// interpHalfWidth linearly interpolates the half width at y between the two
// bracketing contour points. Outside the contour the nearest point's half
// width is used; strip centroids stay inside by construction.
func interpHalfWidth(ys, hws []float64, y float64) float64 {
	if y <= ys[0] {
		return hws[0]
	}
	for i := 1; i < len(ys); i++ {
		if y <= ys[i] {
			t := (y - ys[i-1]) / (ys[i] - ys[i-1])
			return hws[i-1] + t*(hws[i]-hws[i-1])
		}
	}
	return hws[len(hws)-1]
}
