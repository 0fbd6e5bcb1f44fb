// text_metrics_test.go
package textmetrics

import (
	"math"
	"strings"
	"testing"
)

func TestComputeStatistics(t *testing.T) {
	empty := ComputeStatistics("")
	if empty != (TextStatistics{}) {
		t.Errorf("expected all-zero statistics for empty text, got %+v", empty)
	}
	if empty.ReadingTime.String() != LessThanOneMinute {
		t.Errorf("expected %q, got %q", LessThanOneMinute, empty.ReadingTime.String())
	}

	stats := ComputeStatistics(strings.Repeat("word ", 225))
	if stats.WordCount != 225 || stats.ReadingTime.String() != "1 min" {
		t.Errorf("225 words: got %+v", stats)
	}

	stats = ComputeStatistics(strings.Repeat("word ", 226))
	if stats.ReadingTime.String() != "2 min" {
		t.Errorf("226 words: got reading time %q", stats.ReadingTime.String())
	}

	if got := ComputeStatistics("Hello. World!").SentenceCount; got != 2 {
		t.Errorf("sentence count = %d, want 2", got)
	}
	if got := ComputeStatistics("a\n\nb").ParagraphCount; got != 2 {
		t.Errorf("paragraph count = %d, want 2", got)
	}
}

func TestComputeSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"Same text", "plagiarism check sample", "plagiarism check sample", 1},
		{"Disjoint", "a b c", "x y z", 0},
		{"Two thirds", "a b", "a b c", 2.0 / 3.0},
		{"Both empty", "", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("ComputeSimilarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if rev := ComputeSimilarity(tc.b, tc.a); rev != got {
				t.Errorf("not symmetric: %v vs %v", got, rev)
			}
		})
	}
}
