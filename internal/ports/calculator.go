package ports

import (
	"context"

	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
)

// StatisticsCalculator defines the interface for computing text statistics.
type StatisticsCalculator interface {
	Compute(ctx context.Context, text string) domain.TextStatistics
}

// SimilarityCalculator defines the interface for computing similarity between texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, a, b string) domain.SimilarityResult
}
