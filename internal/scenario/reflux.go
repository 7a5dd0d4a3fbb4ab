package scenario

import (
	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/properties"
)

type CoolingRefluxInputs struct {
	// DeclaredVaporRate is a vapor load already at relieving conditions,
	// lb/hr. When set it is taken as given and the duty fields are ignored.
	DeclaredVaporRate *float64 `json:"declared_vapor_rate,omitempty" yaml:"declared_vapor_rate,omitempty"`

	CondenserDuty float64 `json:"condenser_duty" yaml:"condenser_duty"` // Btu/hr
	// LostFraction is the share of duty lost, defaulting to all of it.
	LostFraction *float64 `json:"lost_fraction,omitempty" yaml:"lost_fraction,omitempty"`

	Fluid              string   `json:"fluid" yaml:"fluid"`
	HeatOfVaporization *float64 `json:"heat_of_vaporization,omitempty" yaml:"heat_of_vaporization,omitempty"` // Btu/lb

	// CondensingCredit is vapor still condensed by remaining cooling, lb/hr.
	CondensingCredit float64 `json:"condensing_credit" yaml:"condensing_credit"`
}

type CoolingRefluxResult struct {
	VaporRate      float64 `json:"vapor_rate"` // lb/hr before credit
	ReliefMassFlow float64 `json:"relief_mass_flow"`
	domain.Messages
}

// CoolingRefluxFailure converts the lost condenser duty to vapor, or takes a
// declared vapor rate, and subtracts the remaining condensing credit.
func CoolingRefluxFailure(in CoolingRefluxInputs, store *properties.Store) CoolingRefluxResult {
	var r CoolingRefluxResult
	if in.CondensingCredit < 0 {
		r.Errorf("condensing credit must not be negative")
	}

	if in.DeclaredVaporRate != nil {
		if *in.DeclaredVaporRate < 0 {
			r.Errorf("declared vapor rate must not be negative")
		}
		r.VaporRate = *in.DeclaredVaporRate
	} else {
		r.VaporRate = vaporFromDuty(in, store, &r.Messages)
	}
	if r.HasErrors() {
		r.VaporRate = 0
		return r
	}

	r.ReliefMassFlow = subtractCredit(r.VaporRate, in.CondensingCredit, "lb/hr", &r.Messages)
	return r
}

func vaporFromDuty(in CoolingRefluxInputs, store *properties.Store, msgs *domain.Messages) float64 {
	lost := 1.0
	if in.LostFraction != nil {
		lost = *in.LostFraction
	}
	if lost < 0 || lost > 1 {
		msgs.Errorf("lost duty fraction must be in [0, 1]")
	}
	if in.CondenserDuty <= 0 {
		msgs.Errorf("condenser duty must be positive")
	}

	var hvap float64
	switch {
	case in.HeatOfVaporization != nil:
		hvap = *in.HeatOfVaporization
	case in.Fluid != "":
		f, ok := store.Fluid(in.Fluid)
		if !ok {
			msgs.Errorf("no property data for fluid %q", in.Fluid)
			return 0
		}
		hvap = f.HeatOfVaporization
	default:
		msgs.Errorf("insufficient input: fluid or heat of vaporization required")
		return 0
	}
	if hvap <= 0 {
		msgs.Errorf("heat of vaporization must be positive")
	}
	if msgs.HasErrors() {
		return 0
	}
	return in.CondenserDuty * lost / hvap
}

func (r CoolingRefluxResult) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseCoolingRefluxFailure, selected,
		r.ReliefMassFlow, domain.UnitLbPerHr, r.ReliefMassFlow, r.Messages)
}
