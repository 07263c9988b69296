package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts ISO-8601 strings into UTC instants.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser that resolves zone-less timestamps in the given
// IANA timezone, e.g. "UTC".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewUTCParser returns a parser whose default location is UTC.
func NewUTCParser() *Parser {
	return &Parser{location: time.UTC}
}

// Parse reads value in any accepted layout and returns it in UTC.
// A value with an explicit offset is converted; a value without one is
// interpreted in the parser's location first.
func (p *Parser) Parse(value string) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// Format renders t as RFC 3339 in UTC, keeping fractional seconds only when present.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
