package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_metrics/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	statistics  []ports.StatisticsCalculator
	similarity  []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterStatistics adds a statistics calculator to be warmed up
func (wm *Manager) RegisterStatistics(calc ports.StatisticsCalculator) {
	wm.statistics = append(wm.statistics, calc)
}

// RegisterSimilarity adds a similarity calculator to be warmed up
func (wm *Manager) RegisterSimilarity(calc ports.SimilarityCalculator) {
	wm.similarity = append(wm.similarity, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.statistics)+len(wm.similarity)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	sample := generateSampleText(wm.config.SampleTextSize)
	similar := generateSimilarText(sample, 0.1)
	different := generateSimilarText(sample, 0.5)
	tokens := strings.Fields(sample)

	wm.run(warmupCtx, "normalizers", len(wm.normalizers), func(j int) {
		if len(tokens) == 0 {
			return
		}
		for _, n := range wm.normalizers {
			_ = n.Normalize(strings.ToUpper(tokens[j%len(tokens)]))
		}
	})

	wm.run(warmupCtx, "statistics", len(wm.statistics), func(j int) {
		for _, calc := range wm.statistics {
			_ = calc.Compute(context.Background(), sample)
		}
	})

	wm.run(warmupCtx, "similarity", len(wm.similarity), func(j int) {
		for _, calc := range wm.similarity {
			switch j % 3 {
			case 0:
				_ = calc.Compute(context.Background(), sample, sample)
			case 1:
				_ = calc.Compute(context.Background(), sample, similar)
			default:
				_ = calc.Compute(context.Background(), sample, different)
			}
		}
	})

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// run executes iteration fn on every warmup routine until the iterations
// are exhausted or ctx is done.
func (wm *Manager) run(ctx context.Context, kind string, registered int, fn func(iteration int)) {
	if registered == 0 {
		return
	}

	wm.logger.Debug("Warming up components", "kind", kind, "count", registered)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				fn(j)
			}
		}()
	}

	wg.Wait()
}

// generateSampleText creates multi-paragraph sample text of roughly the specified size
func generateSampleText(size int) string {
	words := []string{
		"The", "quick", "brown", "fox", "jumps", "over", "lazy", "dog.",
		"Hello", "world!", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt?",
		"ut", "labore", "et", "dolore", "magna", "aliqua.",
	}

	var sb strings.Builder
	wordsNeeded := size / 5 // Assuming average word length of 5

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			if i%50 == 0 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(words[i%len(words)])
	}

	return sb.String()
}

// generateSimilarText replaces the leading share of words in original
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)

	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)

	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
