package scenario

import (
	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/properties"
)

type OverfillInputs struct {
	MaxInflowGPM float64 `json:"max_inflow_gpm" yaml:"max_inflow_gpm"`
	OutletGPM    float64 `json:"outlet_gpm" yaml:"outlet_gpm"`

	// SpecificGravity, when zero, comes from the fluid's liquid density.
	SpecificGravity float64 `json:"specific_gravity,omitempty" yaml:"specific_gravity,omitempty"`
	Fluid           string  `json:"fluid,omitempty" yaml:"fluid,omitempty"`
}

type OverfillResult struct {
	VolumetricFlow  float64 `json:"volumetric_flow"` // gpm
	SpecificGravity float64 `json:"specific_gravity"`
	MassFlow        float64 `json:"mass_flow"` // lb/hr
	domain.Messages
}

// LiquidOverfill is the pump-in rate in excess of what still leaves the vessel.
func LiquidOverfill(in OverfillInputs, store *properties.Store) OverfillResult {
	var r OverfillResult
	if in.MaxInflowGPM <= 0 {
		r.Errorf("maximum inflow must be positive")
	}
	if in.OutletGPM < 0 {
		r.Errorf("outlet flow must not be negative")
	}

	sg := in.SpecificGravity
	if sg == 0 && in.Fluid != "" {
		if f, ok := store.Fluid(in.Fluid); ok {
			sg = f.SpecificGravity()
		} else {
			r.Errorf("no property data for fluid %q", in.Fluid)
		}
	}
	if sg <= 0 && !r.HasErrors() {
		r.Errorf("specific gravity must be positive")
	}
	if r.HasErrors() {
		return r
	}

	r.SpecificGravity = sg
	r.VolumetricFlow = subtractCredit(in.MaxInflowGPM, in.OutletGPM, "gpm", &r.Messages)
	r.MassFlow = domain.GPMToMassFlow(r.VolumetricFlow, sg)
	return r
}

func (r OverfillResult) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseLiquidOverfill, selected,
		r.VolumetricFlow, domain.UnitGPM, r.MassFlow, r.Messages)
}
