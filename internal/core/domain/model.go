package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LessThanOneMinuteLabel is how a reading time below one minute is rendered.
const LessThanOneMinuteLabel = "Less than 1 min"

// ReadingTime is an estimated reading duration in whole minutes.
// The zero value means "less than one minute".
type ReadingTime struct {
	Minutes int
}

// LessThanOneMinute reports whether r is the sub-minute sentinel.
func (r ReadingTime) LessThanOneMinute() bool {
	return r.Minutes <= 0
}

// String renders r as "Less than 1 min" or "<N> min".
func (r ReadingTime) String() string {
	if r.LessThanOneMinute() {
		return LessThanOneMinuteLabel
	}
	return strconv.Itoa(r.Minutes) + " min"
}

// MarshalText implements encoding.TextMarshaler.
func (r ReadingTime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ReadingTime) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == LessThanOneMinuteLabel {
		r.Minutes = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, " min"))
	if err != nil || n < 1 {
		return fmt.Errorf("invalid reading time %q", s)
	}
	r.Minutes = n
	return nil
}

// TextStatistics holds the counts derived from a single text.
type TextStatistics struct {
	CharacterCount         int         `json:"character_count"`
	CharacterCountNoSpaces int         `json:"character_count_no_spaces"`
	WordCount              int         `json:"word_count"`
	SentenceCount          int         `json:"sentence_count"`
	ParagraphCount         int         `json:"paragraph_count"`
	ReadingTime            ReadingTime `json:"reading_time"`
}

// SimilarityResult holds the outcome of a similarity computation.
type SimilarityResult struct {
	Name         string
	Score        float64
	Passed       bool
	Threshold    float64
	TokensA      int
	TokensB      int
	Intersection int
	Union        int
	Details      map[string]interface{}
}
