package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_text_metrics/internal/pool"
	"github.com/baditaflorin/go_text_metrics/internal/ports"
)

// FastNormalizer lowercases with a precomputed ASCII table and pooled builders.
// Its output is identical to strings.ToLower.
type FastNormalizer struct {
	// lowercase form of each ASCII byte
	asciiTable [128]byte

	builderPool *pool.StringBuilderPool
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables
func NewFastNormalizer() ports.Normalizer {
	n := &FastNormalizer{
		builderPool: pool.NewStringBuilderPool(),
	}
	for i := 0; i < 128; i++ {
		n.asciiTable[i] = byte(unicode.ToLower(rune(i)))
	}
	return n
}

// Normalize lowercases text.
func (n *FastNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// Tokens that are already lowercase ASCII are returned without copying.
	clean := true
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 || n.asciiTable[b] != b {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)
	sb.Grow(len(text))

	for _, r := range text {
		if r < 128 {
			sb.WriteByte(n.asciiTable[r])
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType uses strings.ToLower
	DefaultNormalizerType NormalizerType = iota
	// FastNormalizerType uses precomputed tables and is optimized for ASCII
	FastNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case FastNormalizerType:
		return NewFastNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
