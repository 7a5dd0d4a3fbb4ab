// Package hydraulic sizes relief for thermal expansion of a blocked-in
// liquid using API 521 Eq. (2):
//
//	q = α·H / (500·d·c)
//
// with q in gpm, α the cubic expansion coefficient (1/°F), H the heat input
// (Btu/hr), d the relative density and c the specific heat (Btu/(lb·°F)).
package hydraulic

import "github.com/couchcryptid/relief-calc/internal/domain"

// FlowConversion is the 500 in the denominator: 8.34 lb/gal × 60 min/hr.
const FlowConversion = 500.0

type Inputs struct {
	CubicExpansionCoefficient float64 `json:"cubic_expansion_coefficient" yaml:"cubic_expansion_coefficient"` // 1/°F
	HeatInputRate             float64 `json:"heat_input_rate" yaml:"heat_input_rate"`                         // Btu/hr
	RelativeDensity           float64 `json:"relative_density" yaml:"relative_density"`
	SpecificHeat              float64 `json:"specific_heat" yaml:"specific_heat"` // Btu/(lb·°F)
}

// Complete reports whether every input is strictly positive.
func (in Inputs) Complete() bool {
	return in.CubicExpansionCoefficient > 0 && in.HeatInputRate > 0 &&
		in.RelativeDensity > 0 && in.SpecificHeat > 0
}

type Result struct {
	VolumetricFlow float64 `json:"volumetric_flow"`  // gpm
	MassFlow       float64 `json:"mass_flow"`        // lb/hr
	ASMEDesignFlow float64 `json:"asme_design_flow"` // lb/hr
	Incomplete     bool    `json:"incomplete,omitempty"`
}

// Calculate returns zero flow, without an error, until all four inputs are
// positive. The case is usually filled in one field at a time.
func Calculate(in Inputs) Result {
	if !in.Complete() {
		return Result{Incomplete: true}
	}
	q := in.CubicExpansionCoefficient * in.HeatInputRate /
		(in.RelativeDensity * in.SpecificHeat * FlowConversion)
	mass := domain.GPMToMassFlow(q, in.RelativeDensity)
	return Result{
		VolumetricFlow: q,
		MassFlow:       mass,
		ASMEDesignFlow: domain.ASMEDesignFlow(mass),
	}
}

// CaseResult converts the expansion result for the design basis. An
// incomplete case is reported but not calculated.
func (r Result) CaseResult(selected bool) domain.CaseFlowResult {
	c := domain.NewCaseFlowResult(domain.CaseHydraulicExpansion, selected,
		r.VolumetricFlow, domain.UnitGPM, r.MassFlow, domain.Messages{})
	if r.Incomplete {
		c.IsCalculated = false
		c.ASMEVIIIDesignFlow = 0
	}
	return c
}
