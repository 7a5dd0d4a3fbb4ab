package domain

import "fmt"

// CaseID identifies one overpressure scenario in the fixed catalog.
type CaseID string

const (
	CaseExternalFire         CaseID = "external-fire"
	CaseControlValveFailure  CaseID = "control-valve-failure"
	CaseBlockedOutlet        CaseID = "blocked-outlet"
	CaseCoolingRefluxFailure CaseID = "cooling-reflux-failure"
	CaseHydraulicExpansion   CaseID = "hydraulic-expansion"
	CaseTubeRupture          CaseID = "tube-rupture"
	CaseLiquidOverfill       CaseID = "liquid-overfill"
)

// Cases lists the catalog in report order. The design basis tie-break follows this order.
var Cases = []CaseID{
	CaseExternalFire,
	CaseControlValveFailure,
	CaseBlockedOutlet,
	CaseCoolingRefluxFailure,
	CaseHydraulicExpansion,
	CaseTubeRupture,
	CaseLiquidOverfill,
}

// Valid reports whether c belongs to the catalog.
func (c CaseID) Valid() bool {
	for _, known := range Cases {
		if c == known {
			return true
		}
	}
	return false
}

// UnmarshalText rejects identifiers outside the catalog.
func (c *CaseID) UnmarshalText(b []byte) error {
	id := CaseID(b)
	if !id.Valid() {
		return fmt.Errorf("unknown case %q", string(b))
	}
	*c = id
	return nil
}

// FlowUnit names the native unit of a case's calculated relieving flow.
type FlowUnit string

const (
	UnitLbPerHr FlowUnit = "lb/hr"
	UnitSCFH    FlowUnit = "SCFH"
	UnitGPM     FlowUnit = "gpm"
)

// CaseFlowResult is the per-scenario outcome consumed by the design basis.
// A new value is produced on every calculation; it is never updated in place.
type CaseFlowResult struct {
	CaseID                  CaseID   `json:"case_id"`
	CalculatedRelievingFlow float64  `json:"calculated_relieving_flow"`
	FlowUnit                FlowUnit `json:"flow_unit"`
	MassFlowRate            float64  `json:"mass_flow_rate"`        // lb/hr
	ASMEVIIIDesignFlow      float64  `json:"asme_viii_design_flow"` // lb/hr
	IsCalculated            bool     `json:"is_calculated"`
	IsSelected              bool     `json:"is_selected"`
	Errors                  []string `json:"errors,omitempty"`
	Warnings                []string `json:"warnings,omitempty"`
}

// NewCaseFlowResult builds a result from a relieving flow in its native unit
// and the equivalent mass flow. Any error in msgs zeroes the flows.
func NewCaseFlowResult(id CaseID, selected bool, flow float64, unit FlowUnit, massFlow float64, msgs Messages) CaseFlowResult {
	r := CaseFlowResult{
		CaseID:     id,
		FlowUnit:   unit,
		IsSelected: selected,
		Errors:     msgs.Errors,
		Warnings:   msgs.Warnings,
	}
	if msgs.HasErrors() {
		return r
	}
	r.CalculatedRelievingFlow = flow
	r.MassFlowRate = massFlow
	r.ASMEVIIIDesignFlow = ASMEDesignFlow(massFlow)
	r.IsCalculated = true
	return r
}
