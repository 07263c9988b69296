package response

import (
	"encoding/json"
	"time"
)

// StatusResp acknowledges a write.
type StatusResp struct {
	Status string `json:"status"`
}

// ErrorResp is the body of every 4xx/5xx. Reason and Fields are set on
// client errors so callers can react without parsing Error.
type ErrorResp struct {
	Error  string   `json:"error"`
	Reason string   `json:"reason,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Kind   string   `json:"kind,omitempty"`
}

// Timestamp is a time that marshals as TimestampFormat in UTC.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampFormat))
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(TimestampFormat, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// Time returns t as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Time(t).UTC()
}
