package config

const (
	defaultPort                  = 8080
	defaultReadTimeoutSeconds    = 30
	defaultWriteTimeoutSeconds   = 30
	defaultRequestTimeoutSeconds = 30
	defaultMaxRequestSize        = 10 * 1024 * 1024 // 10MB
	defaultConcurrency           = 0                // 0 means fasthttp default
	defaultWordsPerMinute        = 225
	defaultSimilarityThreshold   = 0.7
	defaultPrecision             = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Port:                  defaultPort,
			ReadTimeoutSeconds:    defaultReadTimeoutSeconds,
			WriteTimeoutSeconds:   defaultWriteTimeoutSeconds,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
			MaxRequestSize:        defaultMaxRequestSize,
			Concurrency:           defaultConcurrency,
			WarmUp:                true,
		},
		Metrics: Metrics{
			WordsPerMinute:      defaultWordsPerMinute,
			SimilarityThreshold: defaultSimilarityThreshold,
			Precision:           defaultPrecision,
			FastNormalizer:      true,
		},
		Logging: Logging{
			JSON: true,
		},
	}
}
