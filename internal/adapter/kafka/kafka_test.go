package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/relief-calc/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMessageToRawEvent(t *testing.T) {
	now := time.Now()
	msg := kafkago.Message{
		Key:       []byte("V-101"),
		Value:     []byte(`{"id":"V-101"}`),
		Topic:     "relief-study-requests",
		Partition: 2,
		Offset:    42,
		Time:      now,
		Headers: []kafkago.Header{
			{Key: "correlation_id", Value: []byte("abc-123")},
		},
	}

	raw := mapMessageToRawEvent(msg)

	assert.Equal(t, []byte("V-101"), raw.Key)
	assert.JSONEq(t, `{"id":"V-101"}`, string(raw.Value))
	assert.Equal(t, "relief-study-requests", raw.Topic)
	assert.Equal(t, 2, raw.Partition)
	assert.Equal(t, int64(42), raw.Offset)
	assert.Equal(t, now, raw.Timestamp)
	assert.Equal(t, "abc-123", raw.Headers["correlation_id"])
	assert.Nil(t, raw.Commit)
}

func TestToMessage(t *testing.T) {
	event := domain.OutputEvent{
		Key:   []byte("V-101"),
		Value: []byte(`{"study_id":"V-101"}`),
		Headers: map[string]string{
			"governing_case": "tube-rupture",
			"calculated_at":  "2026-03-01T12:00:00Z",
		},
	}

	msg := toMessage(event)

	assert.Equal(t, []byte("V-101"), msg.Key)
	assert.Equal(t, event.Value, msg.Value)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "calculated_at", msg.Headers[0].Key)
	assert.Equal(t, []byte("2026-03-01T12:00:00Z"), msg.Headers[0].Value)
	assert.Equal(t, "governing_case", msg.Headers[1].Key)
	assert.Equal(t, []byte("tube-rupture"), msg.Headers[1].Value)
}

func TestToMessage_NoHeaders(t *testing.T) {
	msg := toMessage(domain.OutputEvent{Key: []byte("k"), Value: []byte("{}")})
	assert.Empty(t, msg.Headers)
}
