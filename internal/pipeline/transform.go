package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/observability"
	"github.com/couchcryptid/relief-calc/internal/study"
)

// Result headers on the sink topic.
const (
	HeaderGoverningCase   = "governing_case"
	HeaderDesignBasisFlow = "design_basis_flow"
	HeaderCalculatedAt    = "calculated_at"
	HeaderCorrelationID   = "correlation_id"
)

// StudyTransformer implements Transformer by decoding a study request and
// running it through an evaluator.
type StudyTransformer struct {
	evaluator study.Evaluator
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewTransformer creates a StudyTransformer.
func NewTransformer(evaluator study.Evaluator, metrics *observability.Metrics, logger *slog.Logger) *StudyTransformer {
	return &StudyTransformer{
		evaluator: evaluator,
		metrics:   metrics,
		logger:    logger,
	}
}

func (t *StudyTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	s, err := study.DecodeJSON(bytes.NewReader(raw.Value))
	if err != nil {
		return domain.OutputEvent{}, err
	}
	if s.ID == "" {
		s.ID = studyID(raw)
	}

	result := t.evaluator.Evaluate(s)
	t.metrics.ObserveCases(result.Cases, result.DesignBasis)

	out, err := SerializeResult(result)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	if id, ok := raw.Headers[HeaderCorrelationID]; ok {
		out.Headers[HeaderCorrelationID] = id
	}

	t.logger.Debug("study evaluated", "study_id", result.StudyID, "cases", len(result.Cases))
	return out, nil
}

// studyID falls back to the message key, then to a hash of the request.
func studyID(raw domain.RawEvent) string {
	if len(raw.Key) > 0 {
		return string(raw.Key)
	}
	return domain.RequestKey("study", raw.Value)
}

// SerializeResult encodes a study result as an output event keyed by study.
func SerializeResult(r study.Result) (domain.OutputEvent, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return domain.OutputEvent{}, fmt.Errorf("serialize study result: %w", err)
	}

	headers := map[string]string{
		HeaderCalculatedAt: r.CalculatedAt.Format(time.RFC3339),
	}
	if r.DesignBasis != nil {
		headers[HeaderGoverningCase] = string(r.DesignBasis.GoverningCaseID)
		headers[HeaderDesignBasisFlow] = strconv.FormatFloat(r.DesignBasis.Flow, 'f', 1, 64)
	}
	return domain.OutputEvent{
		Key:     []byte(r.StudyID),
		Value:   data,
		Headers: headers,
	}, nil
}
