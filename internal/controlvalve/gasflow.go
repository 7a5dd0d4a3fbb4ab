// Package controlvalve computes gas flow through a control valve that has
// failed wide open, using the ISA-S75.01 compressible-flow equations in
// imperial units.
//
//	x  = (P1 − P2) / P1                       pressure-drop ratio, absolute
//	choked (x ≥ xT):
//	     Q = 1360 · Cv · xT · P1 / √(G·T·Z)
//	sub-critical (x < xT):
//	     Y = max(2/3, 1 − x / (3·xT))
//	     Q = 1360 · Cv · Y · P1 · √(x / (G·T·Z))
//
// Q is SCFH, P1 psia, T °R and G the gas specific gravity relative to air.
package controlvalve

import (
	"math"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/properties"
)

const (
	// ISAConstant is N7 for Q in SCFH and P in psia.
	ISAConstant = 1360.0

	// MinExpansionFactor is Y at the onset of choked flow.
	MinExpansionFactor = 2.0 / 3.0

	// CreditSanityFraction is the share of the gross flow above which an
	// outlet-flow credit is flagged for review.
	CreditSanityFraction = 0.7

	minPlausibleZ     = 0.5
	maxPlausibleZ     = 1.5
	minPlausibleTempF = -150.0
	maxPlausibleTempF = 1000.0
)

// Regime is how the flow was obtained.
type Regime string

const (
	RegimeChoked    Regime = "choked"
	RegimeNonChoked Regime = "non-choked"
	RegimeManual    Regime = "manual"
)

// Inputs covers both the manual and the pressure-based paths. When
// ManualMassFlow is set every valve field is ignored.
type Inputs struct {
	ManualMassFlow *float64 `json:"manual_mass_flow,omitempty" yaml:"manual_mass_flow,omitempty"` // lb/hr

	Cv             float64 `json:"cv" yaml:"cv"`
	BypassCv       float64 `json:"bypass_cv" yaml:"bypass_cv"`
	ConsiderBypass bool    `json:"consider_bypass" yaml:"consider_bypass"`

	InletPressurePsig  float64 `json:"inlet_pressure_psig" yaml:"inlet_pressure_psig"`
	OutletPressurePsig float64 `json:"outlet_pressure_psig" yaml:"outlet_pressure_psig"`
	TemperatureF       float64 `json:"temperature_f" yaml:"temperature_f"`

	// Z defaults to the gas's tabulated compressibility when zero.
	Z  float64 `json:"z" yaml:"z"`
	Xt float64 `json:"xt" yaml:"xt"`

	Gas properties.GasProperty `json:"-" yaml:"-"`

	// OutletCredit is flow still leaving the vessel through normal outlets, SCFH.
	OutletCreditEnabled bool    `json:"outlet_credit_enabled" yaml:"outlet_credit_enabled"`
	OutletCredit        float64 `json:"outlet_credit" yaml:"outlet_credit"`
}

// Result always carries gross and net flow, the regime, and the validation
// outcome. Flows are zero when Errors is non-empty.
type Result struct {
	Regime            Regime  `json:"regime,omitempty"`
	EffectiveCv       float64 `json:"effective_cv"`
	PressureDropRatio float64 `json:"pressure_drop_ratio"`
	ExpansionFactor   float64 `json:"expansion_factor"`
	GrossFlow         float64 `json:"gross_flow"` // SCFH
	NetFlow           float64 `json:"net_flow"`   // SCFH, after outlet credit
	MassFlow          float64 `json:"mass_flow"`  // lb/hr
	domain.Messages
}

// Calculate is the entry point for both paths. It never panics or returns an
// error; invalid inputs yield a zero-flow result annotated with reasons.
func Calculate(in Inputs) Result {
	if in.ManualMassFlow != nil {
		return calculateManual(in)
	}
	return calculatePressure(in)
}

func calculateManual(in Inputs) Result {
	r := Result{Regime: RegimeManual}
	mw := in.Gas.MolecularWeight

	if *in.ManualMassFlow < 0 {
		r.Errorf("manual mass flow must not be negative")
	}
	if mw <= 0 {
		r.Errorf("molecular weight must be positive")
	}
	if in.OutletCreditEnabled && in.OutletCredit < 0 {
		r.Errorf("outlet credit must not be negative")
	}
	if r.HasErrors() {
		return r
	}

	r.GrossFlow = domain.MassFlowToSCFH(*in.ManualMassFlow, mw)
	r.NetFlow = applyCredit(in, r.GrossFlow, &r.Messages)
	r.MassFlow = domain.SCFHToMassFlow(r.NetFlow, mw)
	return r
}

func calculatePressure(in Inputs) Result {
	var r Result

	r.EffectiveCv = in.Cv
	if in.ConsiderBypass {
		r.EffectiveCv += in.BypassCv
	}

	z := in.Z
	if z == 0 {
		z = in.Gas.DefaultCompressibilityFactor
	}
	g := in.Gas.SpecificGravity
	p1 := domain.GaugeToAbsolute(in.InletPressurePsig)
	p2 := domain.GaugeToAbsolute(in.OutletPressurePsig)
	t := domain.FahrenheitToRankine(in.TemperatureF)

	validate(in, r.EffectiveCv, z, g, t, &r.Messages)
	if r.HasErrors() {
		return r
	}
	if p2 >= p1 {
		r.Errorf("no forward pressure drop: outlet %.2f psia is not below inlet %.2f psia", p2, p1)
		return r
	}

	x := (p1 - p2) / p1
	r.PressureDropRatio = x
	if x >= in.Xt {
		r.Regime = RegimeChoked
		r.ExpansionFactor = MinExpansionFactor
		r.GrossFlow = ChokedFlow(r.EffectiveCv, in.Xt, p1, g, t, z)
	} else {
		r.Regime = RegimeNonChoked
		r.ExpansionFactor = ExpansionFactor(x, in.Xt)
		r.GrossFlow = SubCriticalFlow(r.EffectiveCv, x, in.Xt, p1, g, t, z)
	}

	r.NetFlow = applyCredit(in, r.GrossFlow, &r.Messages)
	r.MassFlow = domain.SCFHToMassFlow(r.NetFlow, in.Gas.MolecularWeight)
	return r
}

func validate(in Inputs, cv, z, g, t float64, msgs *domain.Messages) {
	if cv <= 0 {
		msgs.Errorf("effective Cv must be positive")
	}
	if in.ConsiderBypass && in.BypassCv < 0 {
		msgs.Errorf("bypass Cv must not be negative")
	}
	if in.InletPressurePsig < 0 {
		msgs.Errorf("inlet pressure must not be negative")
	}
	if in.OutletPressurePsig < 0 {
		msgs.Errorf("outlet pressure must not be negative")
	}
	if in.Xt <= 0 || in.Xt > 1 {
		msgs.Errorf("pressure-drop ratio factor xT must be in (0, 1]")
	}
	if g <= 0 {
		msgs.Errorf("gas specific gravity must be positive")
	}
	if in.Gas.MolecularWeight <= 0 {
		msgs.Errorf("molecular weight must be positive")
	}
	if z <= 0 {
		msgs.Errorf("compressibility factor must be positive")
	}
	if t <= 0 {
		msgs.Errorf("absolute temperature must be positive")
	}
	if in.OutletCreditEnabled && in.OutletCredit < 0 {
		msgs.Errorf("outlet credit must not be negative")
	}

	if z > 0 && (z < minPlausibleZ || z > maxPlausibleZ) {
		msgs.Warnf("compressibility factor %.3f is outside [%.1f, %.1f]", z, minPlausibleZ, maxPlausibleZ)
	}
	if in.TemperatureF < minPlausibleTempF || in.TemperatureF > maxPlausibleTempF {
		msgs.Warnf("temperature %.0f°F is outside the expected range", in.TemperatureF)
	}
}

// applyCredit subtracts the outlet-flow credit, flooring at zero.
func applyCredit(in Inputs, gross float64, msgs *domain.Messages) float64 {
	if !in.OutletCreditEnabled || in.OutletCredit == 0 {
		return gross
	}
	credit := in.OutletCredit
	if credit >= gross {
		msgs.Warnf("outlet credit %.0f SCFH meets or exceeds the relieving flow %.0f SCFH; net flow is zero", credit, gross)
		return 0
	}
	if credit > CreditSanityFraction*gross {
		msgs.Warnf("outlet credit is %.0f%% of the relieving flow; confirm the outlet remains available", credit/gross*100)
	}
	return gross - credit
}

// ExpansionFactor is Y for a sub-critical pressure-drop ratio.
func ExpansionFactor(x, xt float64) float64 {
	return math.Max(MinExpansionFactor, 1-x/(3*xt))
}

// ChokedFlow is the critical-flow equation, SCFH.
func ChokedFlow(cv, xt, p1, g, t, z float64) float64 {
	return ISAConstant * cv * xt * p1 / math.Sqrt(g*t*z)
}

// SubCriticalFlow is the sub-critical equation, SCFH.
func SubCriticalFlow(cv, x, xt, p1, g, t, z float64) float64 {
	y := ExpansionFactor(x, xt)
	return ISAConstant * cv * y * p1 * math.Sqrt(x/(g*t*z))
}

// CaseResult converts the valve result for the design basis.
func (r Result) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseControlValveFailure, selected,
		r.NetFlow, domain.UnitSCFH, r.MassFlow, r.Messages)
}
