package observability

import (
	"log/slog"
	"testing"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads a counter's value or a histogram's sample count.
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, m.Write(&pb))
	if pb.Histogram != nil {
		return float64(pb.Histogram.GetSampleCount())
	}
	return pb.GetCounter().GetValue()
}

func TestObserveCases(t *testing.T) {
	m := NewMetricsForTesting()

	cases := []domain.CaseFlowResult{
		{CaseID: domain.CaseExternalFire, IsCalculated: true, IsSelected: true, ASMEVIIIDesignFlow: 1000},
		{CaseID: domain.CaseTubeRupture, Errors: []string{"tube inner diameter must be positive"}},
		{CaseID: domain.CaseHydraulicExpansion},
	}
	m.ObserveCases(cases, &domain.DesignBasisFlow{Flow: 1000, GoverningCaseID: domain.CaseExternalFire})

	assert.InDelta(t, 1.0, value(t, m.StudiesEvaluated), 0)
	assert.InDelta(t, 1.0, value(t, m.CaseOutcomes.WithLabelValues("external-fire", "calculated")), 0)
	assert.InDelta(t, 1.0, value(t, m.CaseOutcomes.WithLabelValues("tube-rupture", "invalid")), 0)
	assert.InDelta(t, 1.0, value(t, m.CaseOutcomes.WithLabelValues("hydraulic-expansion", "incomplete")), 0)
	assert.InDelta(t, 1.0, value(t, m.CaseOutcomes.WithLabelValues("liquid-overfill", "skipped")), 0)
	assert.InDelta(t, 1.0, value(t, m.DesignBasisFlow), 0)
}

func TestObserveCases_NoBasis(t *testing.T) {
	m := NewMetricsForTesting()
	m.ObserveCases(nil, nil)

	assert.InDelta(t, 1.0, value(t, m.CaseOutcomes.WithLabelValues("blocked-outlet", "skipped")), 0)
	assert.InDelta(t, 0.0, value(t, m.CaseOutcomes.WithLabelValues("blocked-outlet", "calculated")), 0)
}

func TestNewMetricsForTesting_Repeatable(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsForTesting()
		NewMetricsForTesting()
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
