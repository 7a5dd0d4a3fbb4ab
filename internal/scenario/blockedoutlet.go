package scenario

import "github.com/couchcryptid/relief-calc/internal/domain"

type BlockedOutletInputs struct {
	SourceInflow float64 `json:"source_inflow" yaml:"source_inflow"` // lb/hr
	OutletCredit float64 `json:"outlet_credit" yaml:"outlet_credit"` // lb/hr still leaving through open outlets
}

type BlockedOutletResult struct {
	ReliefMassFlow float64 `json:"relief_mass_flow"` // lb/hr
	domain.Messages
}

// BlockedOutlet is the source inflow less any outlet credit.
func BlockedOutlet(in BlockedOutletInputs) BlockedOutletResult {
	var r BlockedOutletResult
	if in.SourceInflow <= 0 {
		r.Errorf("source inflow must be positive")
	}
	if in.OutletCredit < 0 {
		r.Errorf("outlet credit must not be negative")
	}
	if r.HasErrors() {
		return r
	}

	r.ReliefMassFlow = subtractCredit(in.SourceInflow, in.OutletCredit, "lb/hr", &r.Messages)
	return r
}

func (r BlockedOutletResult) CaseResult(selected bool) domain.CaseFlowResult {
	return domain.NewCaseFlowResult(domain.CaseBlockedOutlet, selected,
		r.ReliefMassFlow, domain.UnitLbPerHr, r.ReliefMassFlow, r.Messages)
}

func subtractCredit(flow, credit float64, unit string, msgs *domain.Messages) float64 {
	if credit == 0 {
		return flow
	}
	if credit >= flow {
		msgs.Warnf("credit %.1f %s meets or exceeds the flow %.1f %s; relieving flow is zero", credit, unit, flow, unit)
		return 0
	}
	return flow - credit
}
