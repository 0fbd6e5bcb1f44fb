package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/baditaflorin/go_text_metrics/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file")
	}
	if *cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	cfg, exists, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if exists || cfg.Metrics.WordsPerMinute != 225 {
		t.Fatalf("unexpected result for missing file: exists=%v cfg=%+v", exists, cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textmetrics.toml")
	content := `
[server]
port = 9090

[metrics]
words_per_minute = 200.0
similarity_threshold = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Metrics.WordsPerMinute != 200 || cfg.Metrics.SimilarityThreshold != 0.5 {
		t.Fatalf("unexpected metrics: %+v", cfg.Metrics)
	}
	if cfg.Server.ReadTimeoutSeconds != config.Default().Server.ReadTimeoutSeconds {
		t.Fatalf("unset fields should keep defaults, got %+v", cfg.Server)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero reading speed", "[metrics]\nwords_per_minute = 0.0\n", "words_per_minute"},
		{"threshold above one", "[metrics]\nsimilarity_threshold = 1.5\n", "similarity_threshold"},
		{"bad port", "[server]\nport = 70000\n", "server.port"},
		{"unknown key", "[server]\nhost = \"x\"\n", "parse config"},
		{"malformed", "[server\n", "parse config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "textmetrics.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}

	cfg, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists || *cfg != config.Default() {
		t.Fatalf("sample should decode to defaults, got %+v", cfg)
	}
}

func TestEncode(t *testing.T) {
	cfg := config.Default()
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != cfg {
		t.Fatalf("decoded config differs: %+v", decoded)
	}
}
