package sink_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"victoriaos-connector/internal/trigger"
	"victoriaos-connector/internal/trigger/sink"
)

func TestWriterEmitsPayloadVerbatim(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewWriter(&buf)

	payload := `{"event":"task.created","data":{"id":"t1","title":"x"}}`
	err := s.Deliver(context.Background(), trigger.Delivery{
		ID:         "d1",
		ScopeID:    "wf/trigger",
		ReceivedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload:    json.RawMessage(payload),
	})
	require.NoError(t, err)

	var line struct {
		ID      string          `json:"id"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "d1", line.ID)
	assert.JSONEq(t, payload, string(line.Payload))
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
