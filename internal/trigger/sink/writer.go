// Package sink contains Sink implementations for relayed trigger deliveries.
package sink

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"victoriaos-connector/internal/trigger"
)

type writerSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewWriter writes each delivery as one JSON line to w.
func NewWriter(w io.Writer) trigger.Sink {
	return &writerSink{enc: json.NewEncoder(w)}
}

func (s *writerSink) Deliver(_ context.Context, d trigger.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(d)
}
