package section

import (
	"fmt"

	"github.com/alexiusacademia/gomoc/internal/gb"
)

// ContourPoint describes the symmetric section outline at one elevation.
// The section is mirror-symmetric about its vertical axis, so a half width
// is enough to describe the full outline.
type ContourPoint struct {
	Y         float64 `json:"y"`          // mm, ascending along the section height
	HalfWidth float64 `json:"half_width"` // mm, > 0
}

// Layer describes one reinforcement layer before discretization.
type Layer struct {
	Count         int      `json:"count"`
	Diameter      float64  `json:"diameter"` // mm
	CoverOverride *float64 `json:"cover_override,omitempty"`
}

// Reinforcement carries the three mandatory layers and the shared cover.
// A layer with Count == 0 contributes nothing but must still be present.
type Reinforcement struct {
	Cover  float64 `json:"cover_thickness"` // mm, to bar centroid
	Top    Layer   `json:"top"`
	Middle Layer   `json:"middle"`
	Bottom Layer   `json:"bottom"`
}

// Geometry is the contour description of a symmetric section.
type Geometry struct {
	Height  float64        `json:"height"` // mm
	Contour []ContourPoint `json:"contour_points"`
}

// Fiber is one horizontal concrete strip used for stress integration.
// Y is measured from the mid-height of the section, upward positive.
type Fiber struct {
	Y     float64 // mm, strip centroid
	Width float64 // mm, full width at the centroid
	Area  float64 // mm²
}

// RebarPoint is one reinforcement layer collapsed to a point mass.
type RebarPoint struct {
	Y    float64 // mm, from mid-height
	Area float64 // mm², count × single-bar area
}

// Model is the discretized section: fibers, rebar points and resolved
// material constants. It is built once per analysis and is immutable and
// safe for concurrent reads afterwards.
type Model struct {
	Height   float64
	Fibers   []Fiber
	Rebar    []RebarPoint
	Concrete gb.Concrete
	Steel    gb.Steel
}

// ValidationError reports malformed geometry or reinforcement input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
