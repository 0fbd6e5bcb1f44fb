// text_metrics.go
// Package textmetrics computes statistics for a text and a similarity score
// between two texts.
//
// Statistics are character counts (with and without whitespace), word,
// sentence and paragraph counts, and a reading-time estimate at a fixed
// reading speed:
//
//	minutes = words / 225
//
// Below one minute the estimate is "Less than 1 min", otherwise the minutes
// are rounded up and rendered as "<N> min".
//
// Similarity is the Jaccard index of the lowercase whitespace-delimited
// token sets of both texts:
//
//	score = |A ∩ B| / |A ∪ B|
//
// Two texts without any tokens score 0.
//
// The functions in this package are pure and safe for concurrent use. The
// pkg/statistics and pkg/similarity packages wrap the same computations with
// logging and functional options.
package textmetrics

import (
	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/go_text_metrics/internal/core/jaccard"
	"github.com/baditaflorin/go_text_metrics/internal/core/statistics"
)

// Policy constants.
const (
	// WordsPerMinute is the assumed reading speed.
	WordsPerMinute = statistics.DefaultWordsPerMinute
	// LessThanOneMinute is the rendered reading time of short texts.
	LessThanOneMinute = domain.LessThanOneMinuteLabel
	// SimilarityThreshold is the default score at or above which two texts
	// are considered similar by the configurable calculators.
	SimilarityThreshold = jaccard.DefaultThreshold
)

// TextStatistics holds the counts derived from a single text.
type TextStatistics = domain.TextStatistics

// ReadingTime is an estimated reading duration in whole minutes.
type ReadingTime = domain.ReadingTime

// SimilarityResult holds the outcome of a configured similarity computation.
type SimilarityResult = domain.SimilarityResult

// ComputeStatistics returns the statistics of text.
func ComputeStatistics(text string) TextStatistics {
	return statistics.Compute(text, WordsPerMinute)
}

// ComputeSimilarity returns the Jaccard similarity of a and b in [0, 1].
// It is symmetric and returns 0 when neither text has any token.
func ComputeSimilarity(a, b string) float64 {
	return jaccard.Score(a, b, nil)
}
