package jaccard

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/go_text_metrics/internal/ports"
)

const (
	// DefaultThreshold is the score at or above which a result passes.
	DefaultThreshold = 0.7
	// DefaultPrecision is the number of decimal digits kept in reported scores.
	DefaultPrecision = 4
)

// SimilarityConfig holds configuration for the Jaccard similarity calculator.
type SimilarityConfig struct {
	Threshold float64
	Precision int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: DefaultThreshold,
		Precision: DefaultPrecision,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.Precision < 0 || c.Precision > 15 {
		return errors.New("precision must be between 0 and 15")
	}
	return nil
}

// Overlap describes the token sets of two texts.
type Overlap struct {
	TokensA      int
	TokensB      int
	Intersection int
	Union        int
}

// Score returns the Jaccard index of the two overlapping sets.
// An empty union scores 0.
func (o Overlap) Score() float64 {
	if o.Union == 0 {
		return 0
	}
	return float64(o.Intersection) / float64(o.Union)
}

// TokenSet splits text on whitespace runs and returns the set of normalized tokens.
func TokenSet(text string, normalizer ports.Normalizer) map[string]struct{} {
	fields := strings.Fields(text)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if normalizer != nil {
			f = normalizer.Normalize(f)
		} else {
			f = strings.ToLower(f)
		}
		set[f] = struct{}{}
	}
	return set
}

// Measure computes the overlap between the token sets of a and b.
func Measure(a, b string, normalizer ports.Normalizer) Overlap {
	setA := TokenSet(a, normalizer)
	setB := TokenSet(b, normalizer)

	small, large := setA, setB
	if len(small) > len(large) {
		small, large = large, small
	}
	intersection := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			intersection++
		}
	}

	return Overlap{
		TokensA:      len(setA),
		TokensB:      len(setB),
		Intersection: intersection,
		Union:        len(setA) + len(setB) - intersection,
	}
}

// Score returns the Jaccard similarity of a and b in [0, 1].
// Tokens are lowercased with normalizer, or strings.ToLower when it is nil.
func Score(a, b string, normalizer ports.Normalizer) float64 {
	return Measure(a, b, normalizer).Score()
}

// Calculator implements the token-set similarity calculation.
type Calculator struct {
	config     SimilarityConfig
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a new Jaccard similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Compute calculates the Jaccard similarity between two texts.
func (c *Calculator) Compute(ctx context.Context, a, b string) domain.SimilarityResult {
	return c.ComputeWithThreshold(ctx, a, b, c.config.Threshold)
}

// ComputeWithThreshold is Compute with a per-call pass threshold.
func (c *Calculator) ComputeWithThreshold(ctx context.Context, a, b string, threshold float64) domain.SimilarityResult {
	c.logger.Debug("Starting jaccard similarity computation",
		"bytes_a", len(a),
		"bytes_b", len(b),
	)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.SimilarityResult{
			Name:      "jaccard_similarity",
			Threshold: threshold,
			Details:   details,
		}
	default:
		// continue
	}

	overlap := Measure(a, b, c.normalizer)
	if overlap.Union == 0 {
		c.logger.Debug("Both texts have zero tokens")
		details["empty_union"] = true
	}

	score := overlap.Score()
	factor := math.Pow(10, float64(c.config.Precision))
	score = math.Round(score*factor) / factor
	passed := score >= threshold

	details["tokens_a"] = overlap.TokensA
	details["tokens_b"] = overlap.TokensB
	details["intersection"] = overlap.Intersection
	details["union"] = overlap.Union
	details["threshold"] = threshold

	c.logger.Debug("Computed jaccard similarity",
		"score", score,
		"passed", passed,
		"details", details,
	)

	return domain.SimilarityResult{
		Name:         "jaccard_similarity",
		Score:        score,
		Passed:       passed,
		Threshold:    threshold,
		TokensA:      overlap.TokensA,
		TokensB:      overlap.TokensB,
		Intersection: overlap.Intersection,
		Union:        overlap.Union,
		Details:      details,
	}
}
