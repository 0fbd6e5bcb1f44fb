package similarity

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_metrics/internal/warmup"
	"github.com/baditaflorin/l"
)

func newTestLogger(t *testing.T) l.Logger {
	t.Helper()
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger
}

type upperNormalizer struct{}

func (upperNormalizer) Normalize(text string) string { return strings.ToUpper(text) }

func TestComputeWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		score    float64
		expected bool // whether the result should pass the default threshold
	}{
		{"Identical texts", "The quick brown fox", "the QUICK brown fox", 1, true},
		{"Mostly shared", "the quick brown fox jumps", "the quick brown fox sleeps", 0.6667, false},
		{"Disjoint", "a b c", "x y z", 0, false},
		{"Both empty", "", "", 0, false},
	}

	s, err := New(WithLogger(newTestLogger(t)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Compute(context.Background(), tc.a, tc.b)
			if result.Score != tc.score {
				t.Errorf("score = %v, want %v", result.Score, tc.score)
			}
			if result.Passed != tc.expected {
				t.Errorf("expected passed=%v, got %v, details: %v", tc.expected, result.Passed, result.Details)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	s, err := New(
		WithLogger(newTestLogger(t)),
		WithThreshold(0.5),
		WithPrecision(2),
		WithFastNormalizer(),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Threshold() != 0.5 {
		t.Errorf("Threshold = %v, want 0.5", s.Threshold())
	}

	result := s.Compute(context.Background(), "a b", "A B C")
	if result.Score != 0.67 || !result.Passed {
		t.Errorf("unexpected result: %+v", result)
	}

	result = s.ComputeWithThreshold(context.Background(), "a b", "a b c", 0.8)
	if result.Passed {
		t.Errorf("expected failure at threshold 0.8: %+v", result)
	}

	if _, err := New(WithLogger(newTestLogger(t)), WithThreshold(1.5)); err == nil {
		t.Error("expected error for threshold above 1")
	}
}

func TestCustomNormalizer(t *testing.T) {
	s, err := New(WithLogger(newTestLogger(t)), WithNormalizer(upperNormalizer{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := s.Compute(context.Background(), "Word", "wORD").Score; got != 1 {
		t.Errorf("score = %v, want 1", got)
	}
}

func TestWarmUp(t *testing.T) {
	s, err := New(
		WithLogger(newTestLogger(t)),
		WithFastNormalizer(),
		WithWarmUpConfig(warmup.WarmupConfig{Concurrency: 2, Iterations: 3, SampleTextSize: 100}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.warmed {
		t.Error("expected instance to be warmed up")
	}
}
