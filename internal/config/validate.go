package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateMetrics(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		return errors.New("server.read_timeout_seconds must be positive")
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		return errors.New("server.write_timeout_seconds must be positive")
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		return errors.New("server.request_timeout_seconds must be positive")
	}
	if c.Server.MaxRequestSize <= 0 {
		return errors.New("server.max_request_size must be positive")
	}
	if c.Server.Concurrency < 0 {
		return errors.New("server.concurrency must be zero or positive")
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.WordsPerMinute <= 0 {
		return errors.New("metrics.words_per_minute must be positive")
	}
	if c.Metrics.SimilarityThreshold < 0 || c.Metrics.SimilarityThreshold > 1 {
		return errors.New("metrics.similarity_threshold must be between 0 and 1")
	}
	if c.Metrics.Precision < 0 || c.Metrics.Precision > 15 {
		return errors.New("metrics.precision must be between 0 and 15")
	}
	return nil
}
