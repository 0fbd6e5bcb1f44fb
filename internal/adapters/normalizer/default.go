package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_text_metrics/internal/ports"
)

// DefaultNormalizer lowercases tokens with strings.ToLower.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input text to lower case.
func (n *DefaultNormalizer) Normalize(text string) string {
	return strings.ToLower(text)
}
