package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"repo-activity-feed/pkg/response"
)

func TestTimestampMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"Whole seconds", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), `"2024-01-01T00:00:00Z"`},
		{"Fractional seconds", time.Date(2024, 1, 1, 0, 0, 0, 123000000, time.UTC), `"2024-01-01T00:00:00.123Z"`},
		{"Converted to UTC", time.Date(2024, 1, 1, 7, 0, 0, 0, time.FixedZone("ICT", 7*3600)), `"2024-01-01T00:00:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Timestamp(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Timestamp: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
		})
	}
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	var ts response.Timestamp
	if err := json.Unmarshal([]byte(`"2024-01-01T07:00:00.5+07:00"`), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 500000000, time.UTC)
	if !ts.Time().Equal(want) || ts.Time().Location() != time.UTC {
		t.Errorf("expected %v, got %v", want, ts.Time())
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Errorf("expected error for malformed timestamp")
	}
}
