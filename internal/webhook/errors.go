package webhook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedEventKind is returned for any discriminator other than push and pull_request.
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
	ErrRateLimited          = errors.New("rate limit exceeded")
)

// Field problem reasons.
const (
	ReasonMissing = "missing"
	ReasonInvalid = "invalid"
)

// FieldProblem names one payload field that failed validation, by its path
// in the webhook document (e.g. "pusher.name").
type FieldProblem struct {
	Field  string
	Reason string
}

// ValidationError reports every required field that was absent or unusable.
// Timestamp parse failures are reported here as well.
type ValidationError struct {
	Kind     string
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Reason+" "+p.Field)
	}
	return fmt.Sprintf("invalid %s event: %s", e.Kind, strings.Join(parts, ", "))
}

// Fields returns the offending field paths in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		out = append(out, p.Field)
	}
	return out
}

func (e *ValidationError) add(field, reason string) {
	for _, p := range e.Problems {
		if p.Field == field {
			return
		}
	}
	e.Problems = append(e.Problems, FieldProblem{Field: field, Reason: reason})
}

func (e *ValidationError) empty() bool {
	return len(e.Problems) == 0
}
