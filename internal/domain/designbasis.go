package domain

import "gonum.org/v1/gonum/floats"

// DesignBasisFlow is the governing relief flow across the evaluated cases.
type DesignBasisFlow struct {
	Flow            float64 `json:"flow"` // ASME VIII design flow, lb/hr
	GoverningCaseID CaseID  `json:"governing_case_id"`
}

// DesignBasis returns the selected, calculated case with the largest ASME VIII
// design flow. Ties go to the earliest result in the slice. ok is false when no
// case qualifies.
func DesignBasis(results []CaseFlowResult) (basis DesignBasisFlow, ok bool) {
	flows := make([]float64, 0, len(results))
	ids := make([]CaseID, 0, len(results))
	for _, r := range results {
		if !r.IsSelected || !r.IsCalculated {
			continue
		}
		flows = append(flows, r.ASMEVIIIDesignFlow)
		ids = append(ids, r.CaseID)
	}
	if len(flows) == 0 {
		return DesignBasisFlow{}, false
	}

	i := floats.MaxIdx(flows)
	return DesignBasisFlow{Flow: flows[i], GoverningCaseID: ids[i]}, true
}
