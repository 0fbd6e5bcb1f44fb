// Package statistics computes character, word, sentence and paragraph
// counts plus a reading-time estimate for a text.
package statistics

import (
	"context"

	"github.com/baditaflorin/go_text_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	corestats "github.com/baditaflorin/go_text_metrics/internal/core/statistics"
	"github.com/baditaflorin/go_text_metrics/internal/ports"
	"github.com/baditaflorin/go_text_metrics/internal/warmup"
	"github.com/baditaflorin/l"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = corestats.DefaultWordsPerMinute

// Statistics provides methods to compute text statistics.
type Statistics struct {
	calculator *corestats.Calculator
	logger     ports.Logger
	warmed     bool
}

// StatisticsOption defines a functional option for configuring Statistics.
type StatisticsOption func(*statisticsConfig)

type statisticsConfig struct {
	WordsPerMinute float64
	Logger         ports.Logger
	WarmUp         bool
	WarmUpConfig   warmup.WarmupConfig
}

// WithWordsPerMinute sets a custom reading speed.
func WithWordsPerMinute(wpm float64) StatisticsOption {
	return func(cfg *statisticsConfig) {
		cfg.WordsPerMinute = wpm
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) StatisticsOption {
	return func(cfg *statisticsConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) StatisticsOption {
	return func(cfg *statisticsConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) StatisticsOption {
	return func(cfg *statisticsConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Statistics instance.
func New(opts ...StatisticsOption) (*Statistics, error) {
	config := &statisticsConfig{
		WordsPerMinute: corestats.DefaultConfig().WordsPerMinute,
		WarmUpConfig:   warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	calculator, err := corestats.NewCalculator(corestats.StatisticsConfig{
		WordsPerMinute: config.WordsPerMinute,
	}, config.Logger)
	if err != nil {
		return nil, err
	}

	s := &Statistics{
		calculator: calculator,
		logger:     config.Logger,
	}

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Compute calculates the statistics of text.
func (s *Statistics) Compute(ctx context.Context, text string) domain.TextStatistics {
	return s.calculator.Compute(ctx, text)
}

// WordsPerMinute returns the configured reading speed.
func (s *Statistics) WordsPerMinute() float64 {
	return s.calculator.WordsPerMinute()
}

// WarmUp performs system warm-up to optimize performance.
func (s *Statistics) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterStatistics(s.calculator)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}
