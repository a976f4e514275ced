package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"victoriaos-connector/pkg/response"
)

func TestDateTime_MarshalJSON(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00.000Z"`},
		{"offset converted", time.Date(2024, 5, 1, 16, 30, 0, 250_000_000, cet), `"2024-05-01T15:30:00.250Z"`},
		{"zero", time.Time{}, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.NewDateTime(tt.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTime_UnmarshalJSON(t *testing.T) {
	var d response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T15:30:00.250Z"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2024, 5, 1, 15, 30, 0, 250_000_000, time.UTC)
	if !time.Time(d).Equal(want) {
		t.Errorf("got %v, want %v", time.Time(d), want)
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
