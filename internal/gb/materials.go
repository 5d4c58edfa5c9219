package gb

import (
	"fmt"
	"math"
	"sort"
)

// GB 50010-2010 Material Constants

const (
	// Strain limits for concrete (Section 6.2.1)
	EpsilonC0 = 0.002  // Strain at peak compressive stress
	EpsilonCU = 0.0035 // Ultimate compressive strain

	// Tensile strain limits (model values)
	EpsilonT0 = 1e-4 // Strain at cracking onset
	EpsilonTU = 1e-3 // Ultimate tensile strain

	// Modulus of elasticity (MPa)
	Ec = 3.0e4 // Concrete (model value, ~30 GPa)
	Es = 2.0e5 // Reinforcing steel (Section 4.2.5)

	// Partial safety factor for reinforcement
	GammaS = 1.15

	// Ultimate tensile strain of reinforcement used in section
	// analysis (Section 6.2.1 limits strain to 0.01)
	EpsilonSU = 0.01
)

// Concrete holds the resolved constants for one concrete grade.
// All stresses in MPa, strains dimensionless.
type Concrete struct {
	Grade string  // e.g. "C30", empty when constants are supplied directly
	Fck   float64 // Characteristic compressive strength
	Fcd   float64 // Design compressive strength
	Ftd   float64 // Design tensile strength
	Ec    float64 // Modulus of elasticity
	Eps0  float64 // Strain at peak stress
	EpsU  float64 // Ultimate compressive strain
	EpsT0 float64 // Cracking onset strain
	EpsTU float64 // Ultimate tensile strain
}

// Steel holds the resolved constants for one reinforcement grade.
type Steel struct {
	Grade string
	Fyk   float64 // Characteristic yield strength (MPa)
	Fyd   float64 // Design yield strength (MPa)
	Es    float64 // Modulus of elasticity (MPa)
	EpsY  float64 // Yield strain
	EpsSU float64 // Rupture strain
}

// concreteGrades maps grade label to characteristic strength f_ck (MPa).
var concreteGrades = map[string]float64{
	"C20": 20, "C25": 25, "C30": 30, "C35": 35, "C40": 40,
	"C45": 45, "C50": 50, "C55": 55, "C60": 60, "C65": 65,
	"C70": 70, "C75": 75, "C80": 80,
}

// steelGrades maps grade label to characteristic yield strength f_yk (MPa).
var steelGrades = map[string]float64{
	"HPB300": 300,
	"HRB335": 335,
	"HRB400": 400,
	"HRB500": 500,
	"RRB400": 400,
}

var steelDescriptions = map[string]string{
	"HPB300": "Plain round bar HPB300",
	"HRB335": "Ribbed bar HRB335",
	"HRB400": "Ribbed bar HRB400",
	"HRB500": "Ribbed bar HRB500",
	"RRB400": "Remained-heat-treated ribbed bar RRB400",
}

// ResolveConcrete resolves a concrete grade label into its derived constants.
func ResolveConcrete(grade string) (Concrete, error) {
	fck, ok := concreteGrades[grade]
	if !ok {
		return Concrete{}, fmt.Errorf("unknown concrete grade %q", grade)
	}
	return Concrete{
		Grade: grade,
		Fck:   fck,
		Fcd:   fck,
		Ftd:   0.2 * fck,
		Ec:    Ec,
		Eps0:  EpsilonC0,
		EpsU:  EpsilonCU,
		EpsT0: EpsilonT0,
		EpsTU: EpsilonTU,
	}, nil
}

// ResolveSteel resolves a reinforcement grade label into its derived constants.
func ResolveSteel(grade string) (Steel, error) {
	fyk, ok := steelGrades[grade]
	if !ok {
		return Steel{}, fmt.Errorf("unknown steel grade %q", grade)
	}
	fyd := fyk / GammaS
	return Steel{
		Grade: grade,
		Fyk:   fyk,
		Fyd:   fyd,
		Es:    Es,
		EpsY:  fyd / Es,
		EpsSU: EpsilonSU,
	}, nil
}

// ConcreteGrades returns the supported concrete grade labels, ascending by strength.
func ConcreteGrades() []string {
	grades := make([]string, 0, len(concreteGrades))
	for g := range concreteGrades {
		grades = append(grades, g)
	}
	sort.Slice(grades, func(i, j int) bool {
		return concreteGrades[grades[i]] < concreteGrades[grades[j]]
	})
	return grades
}

// SteelGrades returns the supported steel grade labels, ascending by strength.
func SteelGrades() []string {
	grades := make([]string, 0, len(steelGrades))
	for g := range steelGrades {
		grades = append(grades, g)
	}
	sort.Slice(grades, func(i, j int) bool {
		if steelGrades[grades[i]] == steelGrades[grades[j]] {
			return grades[i] < grades[j]
		}
		return steelGrades[grades[i]] < steelGrades[grades[j]]
	})
	return grades
}

// SteelDescription returns a human-readable description of a steel grade.
func SteelDescription(grade string) string {
	if d, ok := steelDescriptions[grade]; ok {
		return d
	}
	return ""
}

// BarArea returns the cross-sectional area of a single bar (mm²)
// for a given diameter (mm).
func BarArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}
