// Package similarity scores how much two texts overlap using the Jaccard
// index of their lowercase whitespace-delimited token sets.
package similarity

import (
	"context"

	"github.com/baditaflorin/go_text_metrics/internal/adapters/logger"
	"github.com/baditaflorin/go_text_metrics/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_metrics/internal/core/domain"
	"github.com/baditaflorin/go_text_metrics/internal/core/jaccard"
	"github.com/baditaflorin/go_text_metrics/internal/ports"
	"github.com/baditaflorin/go_text_metrics/internal/warmup"
	"github.com/baditaflorin/l"
)

// DefaultThreshold is the pass threshold used when none is configured.
const DefaultThreshold = jaccard.DefaultThreshold

// Similarity provides methods to compute the Jaccard similarity of two texts.
type Similarity struct {
	calculator *jaccard.Calculator
	logger     ports.Logger
	normalizer ports.Normalizer
	threshold  float64
	warmed     bool
}

// SimilarityOption defines a functional option for configuring Similarity.
type SimilarityOption func(*similarityConfig)

type similarityConfig struct {
	Threshold    float64
	Precision    int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithThreshold sets the score at or above which a result is marked passed.
func WithThreshold(th float64) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.Threshold = th
	}
}

// WithPrecision sets the number of decimal digits kept in reported scores.
func WithPrecision(p int) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.Precision = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizer sets a custom token normalizer.
func WithNormalizer(normalizer ports.Normalizer) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.Normalizer = normalizer
	}
}

// WithFastNormalizer sets the table-driven lowercase normalizer.
func WithFastNormalizer() SimilarityOption {
	return func(cfg *similarityConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.FastNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) SimilarityOption {
	return func(cfg *similarityConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Similarity instance.
func New(opts ...SimilarityOption) (*Similarity, error) {
	defaultConfig := jaccard.DefaultConfig()

	config := &similarityConfig{
		Threshold:    defaultConfig.Threshold,
		Precision:    defaultConfig.Precision,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
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

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	calculator, err := jaccard.NewCalculator(jaccard.SimilarityConfig{
		Threshold: config.Threshold,
		Precision: config.Precision,
	}, config.Logger, config.Normalizer)
	if err != nil {
		return nil, err
	}

	s := &Similarity{
		calculator: calculator,
		logger:     config.Logger,
		normalizer: config.Normalizer,
		threshold:  config.Threshold,
	}

	if config.WarmUp {
		s.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return s, nil
}

// Compute calculates the Jaccard similarity between two texts.
func (s *Similarity) Compute(ctx context.Context, a, b string) domain.SimilarityResult {
	return s.calculator.Compute(ctx, a, b)
}

// ComputeWithThreshold calculates the similarity using threshold instead of
// the configured one to decide Passed.
func (s *Similarity) ComputeWithThreshold(ctx context.Context, a, b string, threshold float64) domain.SimilarityResult {
	return s.calculator.ComputeWithThreshold(ctx, a, b, threshold)
}

// Threshold returns the configured pass threshold.
func (s *Similarity) Threshold() float64 {
	return s.threshold
}

// WarmUp performs system warm-up to optimize performance.
func (s *Similarity) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(s.logger, config)
	warmupMgr.RegisterSimilarity(s.calculator)
	warmupMgr.RegisterNormalizer(s.normalizer)

	warmupMgr.WarmUp(ctx)
	s.warmed = true
}
