// Package tuberupture sizes relief for a ruptured heat-exchanger tube using
// sharp-edged orifice equations across the failed tube bore.
package tuberupture

import (
	"fmt"
	"math"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/properties"
)

const (
	// DischargeCoefficient is the default for a guillotine tube break.
	DischargeCoefficient = 0.6

	// GasConstant is R in ft·lbf/(lb-mol·°R).
	GasConstant = 1545.35

	psfPerPsi = 144.0
)

// FluidState selects the orifice model.
type FluidState int

const (
	Liquid FluidState = iota
	Gas
	FlashingLiquid
)

var stateNames = map[FluidState]string{
	Liquid:         "liquid",
	Gas:            "gas",
	FlashingLiquid: "flashing-liquid",
}

func (s FluidState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("FluidState(%d)", int(s))
}

func (s FluidState) MarshalText() ([]byte, error) {
	if n, ok := stateNames[s]; ok {
		return []byte(n), nil
	}
	return nil, fmt.Errorf("unknown fluid state %d", int(s))
}

func (s *FluidState) UnmarshalText(b []byte) error {
	for k, v := range stateNames {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown fluid state %q", string(b))
}

type Inputs struct {
	TubeInnerDiameterIn float64 `json:"tube_inner_diameter_in" yaml:"tube_inner_diameter_in"`
	// NumberOfTubes defaults to a single guillotine break.
	NumberOfTubes int `json:"number_of_tubes" yaml:"number_of_tubes"`

	HighPressurePsig float64 `json:"high_pressure_psig" yaml:"high_pressure_psig"`
	// LowPressureOperatingPsig is the receiving side pressure the tube
	// discharges against.
	LowPressureOperatingPsig float64 `json:"low_pressure_operating_psig" yaml:"low_pressure_operating_psig"`
	LowPressureDesignPsig    float64 `json:"low_pressure_design_psig" yaml:"low_pressure_design_psig"`

	State FluidState `json:"state" yaml:"state"`
	// DischargeCoefficient defaults to 0.6 when zero.
	DischargeCoefficient float64 `json:"discharge_coefficient,omitempty" yaml:"discharge_coefficient,omitempty"`

	// LiquidDensity is used by the liquid and flashing-liquid models, lb/ft³.
	LiquidDensity float64 `json:"liquid_density" yaml:"liquid_density"`

	// Gas and TemperatureF are used by the gas model.
	Gas          properties.GasProperty `json:"-" yaml:"-"`
	TemperatureF float64                `json:"temperature_f" yaml:"temperature_f"`
}

type Result struct {
	FlowArea       float64 `json:"flow_area"`     // ft²
	PerTubeFlow    float64 `json:"per_tube_flow"` // lb/hr
	TotalFlow      float64 `json:"total_flow"`    // lb/hr
	ASMEDesignFlow float64 `json:"asme_design_flow"`
	ReliefRequired bool    `json:"relief_required"`
	Choked         bool    `json:"choked,omitempty"`
	domain.Messages
}

// FlowArea is the bore area of one tube in ft².
func FlowArea(diameterIn float64) float64 {
	d := diameterIn / 12
	return math.Pi * (d / 2) * (d / 2)
}

// CriticalPressureRatio is the downstream/upstream ratio below which gas flow
// through an orifice is choked.
func CriticalPressureRatio(k float64) float64 {
	return math.Pow(2/(k+1), k/(k-1))
}

// LiquidFlow is the incompressible orifice flow in lb/hr for a pressure
// differential in psi.
func LiquidFlow(c, area, dpPsi, density float64) float64 {
	v := c * math.Sqrt(2*domain.GravityFtPerS2*dpPsi*psfPerPsi/density)
	return domain.PerSecondToPerHour(v * area * density)
}

// GasFlow is the compressible orifice flow in lb/hr. Pressures are psia and
// temperature °R. It also reports whether the flow is choked.
func GasFlow(c, area, p1, p2, k, mw, z, t float64) (float64, bool) {
	gc := domain.GravityFtPerS2
	p1psf := p1 * psfPerPsi
	density := mw / (z * GasConstant * t)

	if p2/p1 <= CriticalPressureRatio(k) {
		w := c * area * p1psf * math.Sqrt(k*gc*density*math.Pow(2/(k+1), (k+1)/(k-1)))
		return domain.PerSecondToPerHour(w), true
	}

	r := p2 / p1
	w := c * area * p1psf * math.Sqrt(2*gc*k/(k-1)*density*(math.Pow(r, 2/k)-math.Pow(r, (k+1)/k)))
	return domain.PerSecondToPerHour(w), false
}

// Calculate sizes the rupture case. Relief is flagged as required only when
// the high-pressure side exceeds the low-pressure side design pressure; the
// flow is computed either way.
func Calculate(in Inputs) Result {
	var r Result

	tubes := in.NumberOfTubes
	if tubes == 0 {
		tubes = 1
	}
	c := in.DischargeCoefficient
	if c == 0 {
		c = DischargeCoefficient
	}

	validate(in, tubes, c, &r.Messages)
	if r.HasErrors() {
		return r
	}

	dp := in.HighPressurePsig - in.LowPressureOperatingPsig
	if dp <= 0 {
		r.Errorf("no pressure differential: high side %.1f psig is not above low side %.1f psig",
			in.HighPressurePsig, in.LowPressureOperatingPsig)
		return r
	}

	r.ReliefRequired = in.HighPressurePsig > in.LowPressureDesignPsig
	if !r.ReliefRequired {
		r.Warnf("relief may not be required: high side %.1f psig does not exceed low side design %.1f psig",
			in.HighPressurePsig, in.LowPressureDesignPsig)
	}

	r.FlowArea = FlowArea(in.TubeInnerDiameterIn)
	switch in.State {
	case Liquid:
		r.PerTubeFlow = LiquidFlow(c, r.FlowArea, dp, in.LiquidDensity)
	case FlashingLiquid:
		r.PerTubeFlow = LiquidFlow(c, r.FlowArea, dp, in.LiquidDensity)
		r.Warnf("flashing liquid sized as all-liquid flow; two-phase effects are not modeled")
	case Gas:
		z := in.Gas.DefaultCompressibilityFactor
		if z == 0 {
			z = 1
		}
		r.PerTubeFlow, r.Choked = GasFlow(c, r.FlowArea,
			domain.GaugeToAbsolute(in.HighPressurePsig), domain.GaugeToAbsolute(in.LowPressureOperatingPsig),
			in.Gas.SpecificHeatRatio, in.Gas.MolecularWeight, z, domain.FahrenheitToRankine(in.TemperatureF))
	}

	r.TotalFlow = r.PerTubeFlow * float64(tubes)
	r.ASMEDesignFlow = domain.ASMEDesignFlow(r.TotalFlow)
	return r
}

func validate(in Inputs, tubes int, c float64, msgs *domain.Messages) {
	if in.TubeInnerDiameterIn <= 0 {
		msgs.Errorf("tube inner diameter must be positive")
	}
	if tubes < 0 {
		msgs.Errorf("number of tubes must not be negative")
	}
	if c <= 0 || c > 1 {
		msgs.Errorf("discharge coefficient must be in (0, 1]")
	}
	if in.HighPressurePsig < 0 || in.LowPressureOperatingPsig < 0 {
		msgs.Errorf("pressures must not be negative")
	}

	switch in.State {
	case Liquid, FlashingLiquid:
		if in.LiquidDensity <= 0 {
			msgs.Errorf("liquid density must be positive")
		}
	case Gas:
		if in.Gas.MolecularWeight <= 0 {
			msgs.Errorf("molecular weight must be positive")
		}
		if in.Gas.SpecificHeatRatio <= 1 {
			msgs.Errorf("specific heat ratio must be greater than 1")
		}
		if domain.FahrenheitToRankine(in.TemperatureF) <= 0 {
			msgs.Errorf("absolute temperature must be positive")
		}
	default:
		msgs.Errorf("unknown fluid state %s", in.State)
	}
}

// CaseResult converts the rupture result for the design basis.
func (r Result) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseTubeRupture, selected,
		r.TotalFlow, domain.UnitLbPerHr, r.TotalFlow, r.Messages)
}
