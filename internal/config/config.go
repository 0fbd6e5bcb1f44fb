package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains HTTP listener settings.
type Server struct {
	Port                  int  `toml:"port"`
	ReadTimeoutSeconds    int  `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds   int  `toml:"write_timeout_seconds"`
	RequestTimeoutSeconds int  `toml:"request_timeout_seconds"`
	MaxRequestSize        int  `toml:"max_request_size"`
	Concurrency           int  `toml:"concurrency"`
	WarmUp                bool `toml:"warm_up"`
}

// Metrics contains the policy constants of the calculators.
type Metrics struct {
	WordsPerMinute      float64 `toml:"words_per_minute"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	Precision           int     `toml:"precision"`
	FastNormalizer      bool    `toml:"fast_normalizer"`
}

// Logging contains log output settings.
type Logging struct {
	File string `toml:"file"`
	JSON bool   `toml:"json"`
}

// Config is the root configuration document.
type Config struct {
	Server  Server  `toml:"server"`
	Metrics Metrics `toml:"metrics"`
	Logging Logging `toml:"logging"`
}

// Load parses and validates the configuration at path. An empty path or a
// missing file yields the defaults; exists reports whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	exists, err := fileExists(path)
	if err != nil {
		return nil, false, err
	}

	if exists {
		file, err := os.Open(path)
		if err != nil {
			return nil, false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	return &cfg, exists, nil
}

func fileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("config path %s is a directory", path)
	}
	return true, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if path == "" {
		return errors.New("config path is required")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders c as TOML.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// ReadTimeout returns the server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request computation timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}
