package observability

import (
	"github.com/couchcryptid/relief-calc/internal/domain"
)

// ObserveCases records one outcome per catalog case for an evaluated study
// and the governing flow when there is one.
func (m *Metrics) ObserveCases(cases []domain.CaseFlowResult, basis *domain.DesignBasisFlow) {
	m.StudiesEvaluated.Inc()

	present := make(map[domain.CaseID]domain.CaseFlowResult, len(cases))
	for _, c := range cases {
		present[c.CaseID] = c
	}
	for _, id := range domain.Cases {
		m.CaseOutcomes.WithLabelValues(string(id), Outcome(present[id], id)).Inc()
	}

	if basis != nil {
		m.DesignBasisFlow.Observe(basis.Flow)
	}
}

// Outcome classifies a case result for the case_outcomes metric. A zero
// result with a different ID means the case was absent.
func Outcome(c domain.CaseFlowResult, id domain.CaseID) string {
	switch {
	case c.CaseID != id:
		return "skipped"
	case c.IsCalculated:
		return "calculated"
	case len(c.Errors) > 0:
		return "invalid"
	default:
		return "incomplete"
	}
}
