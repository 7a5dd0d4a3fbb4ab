package pipeline_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/pipeline"
	"github.com/couchcryptid/relief-calc/internal/study"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyTransformer_Transform(t *testing.T) {
	at := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { domain.SetClock(nil) })

	raw := makeRawEvent(t, study.Sample())
	raw.Headers = map[string]string{pipeline.HeaderCorrelationID: "req-42"}

	tfm := pipeline.NewTransformer(study.NewEngine(nil), newTestMetrics(), slog.Default())
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, []byte("V-101"), out.Key)
	assert.Equal(t, "req-42", out.Headers[pipeline.HeaderCorrelationID])
	assert.Equal(t, "2026-03-01T12:00:00Z", out.Headers[pipeline.HeaderCalculatedAt])
	assert.Equal(t, string(domain.CaseTubeRupture), out.Headers[pipeline.HeaderGoverningCase])

	var result study.Result
	require.NoError(t, json.Unmarshal(out.Value, &result))
	require.NotNil(t, result.DesignBasis)
	flow, err := strconv.ParseFloat(out.Headers[pipeline.HeaderDesignBasisFlow], 64)
	require.NoError(t, err)
	assert.InDelta(t, result.DesignBasis.Flow, flow, 0.05)
	assert.Len(t, result.Cases, len(domain.Cases))
}

func TestStudyTransformer_RejectsUndecodable(t *testing.T) {
	tfm := pipeline.NewTransformer(study.NewEngine(nil), newTestMetrics(), slog.Default())

	for _, body := range []string{`not json`, `{"id":"x","volcano":{}}`} {
		_, err := tfm.Transform(context.Background(), domain.RawEvent{Value: []byte(body)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode study")
	}
}

func TestStudyTransformer_StudyIDFallback(t *testing.T) {
	tfm := pipeline.NewTransformer(study.NewEngine(nil), newTestMetrics(), slog.Default())
	body := []byte(`{"blocked_outlet":{"selected":true,"source_inflow":100}}`)

	keyed, err := tfm.Transform(context.Background(), domain.RawEvent{Key: []byte("from-key"), Value: body})
	require.NoError(t, err)
	assert.Equal(t, "from-key", string(keyed.Key))

	hashed, err := tfm.Transform(context.Background(), domain.RawEvent{Value: body})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestKey("study", body), string(hashed.Key))
}

func TestSerializeResult_NoDesignBasis(t *testing.T) {
	out, err := pipeline.SerializeResult(study.Result{StudyID: "empty"})
	require.NoError(t, err)
	assert.NotContains(t, out.Headers, pipeline.HeaderGoverningCase)
	assert.Contains(t, out.Headers, pipeline.HeaderCalculatedAt)
}

func TestSerializeResult_SampleStudy(t *testing.T) {
	r := study.NewEngine(nil).Evaluate(study.Sample())

	out, err := pipeline.SerializeResult(r)
	require.NoError(t, err)
	assert.Equal(t, "V-101", string(out.Key))
	assert.Equal(t, string(domain.CaseTubeRupture), out.Headers[pipeline.HeaderGoverningCase])
	assert.NotEmpty(t, out.Value)
}
