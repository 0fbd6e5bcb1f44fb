package ports

// Normalizer defines the interface for token normalization.
type Normalizer interface {
	Normalize(text string) string
}
