package webhook

import (
	"github.com/go-playground/validator/v10"

	"repo-activity-feed/pkg/datemath"
)

// Normalizer turns GitHub webhook deliveries into model.Action records.
// It is stateless and safe for concurrent use.
type Normalizer struct {
	parser   *datemath.Parser
	validate *validator.Validate
}

// NewNormalizer creates a Normalizer. Timestamps without a zone are
// interpreted in parser's location; pass datemath.NewUTCParser() to treat
// them as UTC.
func NewNormalizer(parser *datemath.Parser) *Normalizer {
	if parser == nil {
		parser = datemath.NewUTCParser()
	}
	return &Normalizer{
		parser:   parser,
		validate: validator.New(),
	}
}
