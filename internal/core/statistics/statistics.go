package statistics

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/go_text_metrics/internal/ports"
)

// DefaultWordsPerMinute is the assumed reading speed.
const DefaultWordsPerMinute = 225.0

// StatisticsConfig holds configuration for the statistics calculator.
type StatisticsConfig struct {
	WordsPerMinute float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() StatisticsConfig {
	return StatisticsConfig{
		WordsPerMinute: DefaultWordsPerMinute,
	}
}

// Validate checks if the configuration is valid.
func (c StatisticsConfig) Validate() error {
	if c.WordsPerMinute <= 0 || math.IsInf(c.WordsPerMinute, 0) || math.IsNaN(c.WordsPerMinute) {
		return errors.New("wordsPerMinute must be a positive number")
	}
	return nil
}

// Compute derives the statistics of text at the given reading speed.
// It is a total function: every input, including "", yields a result.
func Compute(text string, wordsPerMinute float64) domain.TextStatistics {
	stats := domain.TextStatistics{
		CharacterCount: utf8.RuneCountInString(text),
	}
	for _, r := range text {
		if !unicode.IsSpace(r) {
			stats.CharacterCountNoSpaces++
		}
	}

	if strings.TrimSpace(text) == "" {
		return stats
	}

	stats.WordCount = len(strings.Fields(text))
	stats.SentenceCount = countSegments(text, isSentenceTerminator)
	stats.ParagraphCount = countSegments(text, isNewline)
	stats.ReadingTime = EstimateReadingTime(stats.WordCount, wordsPerMinute)
	return stats
}

// EstimateReadingTime converts a word count into a reading time.
// Below one minute the sentinel is returned, otherwise minutes are rounded up.
func EstimateReadingTime(words int, wordsPerMinute float64) domain.ReadingTime {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	minutes := float64(words) / wordsPerMinute
	if minutes < 1 {
		return domain.ReadingTime{}
	}
	return domain.ReadingTime{Minutes: int(math.Ceil(minutes))}
}

// countSegments splits text on runs of separator runes and counts the
// segments that contain something other than whitespace.
func countSegments(text string, sep func(rune) bool) int {
	n := 0
	for _, seg := range strings.FieldsFunc(text, sep) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isNewline(r rune) bool {
	return r == '\n'
}

// Calculator implements text statistics with logging.
type Calculator struct {
	config StatisticsConfig
	logger ports.Logger
}

// NewCalculator creates a new statistics calculator.
func NewCalculator(config StatisticsConfig, logger ports.Logger) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config: config,
		logger: logger,
	}, nil
}

// Compute calculates the statistics of text.
// A context that is already cancelled yields zero statistics.
func (c *Calculator) Compute(ctx context.Context, text string) domain.TextStatistics {
	c.logger.Debug("Starting statistics computation", "bytes", len(text))

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		return domain.TextStatistics{}
	default:
	}

	stats := Compute(text, c.config.WordsPerMinute)

	c.logger.Debug("Computed text statistics",
		"characters", stats.CharacterCount,
		"characters_no_spaces", stats.CharacterCountNoSpaces,
		"words", stats.WordCount,
		"sentences", stats.SentenceCount,
		"paragraphs", stats.ParagraphCount,
		"reading_time", stats.ReadingTime.String(),
	)

	return stats
}

// WordsPerMinute returns the configured reading speed.
func (c *Calculator) WordsPerMinute() float64 {
	return c.config.WordsPerMinute
}
