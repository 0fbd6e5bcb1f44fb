package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestStatsJSON(t *testing.T) {
	out, err := runCLI(t, "", "stats", "--text", "Hello. World!\n\nSecond paragraph here", "-o", "json")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}

	var got struct {
		WordCount      int    `json:"word_count"`
		SentenceCount  int    `json:"sentence_count"`
		ParagraphCount int    `json:"paragraph_count"`
		ReadingTime    string `json:"reading_time"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.WordCount != 5 || got.SentenceCount != 3 || got.ParagraphCount != 2 {
		t.Errorf("unexpected counts: %+v", got)
	}
	if got.ReadingTime != "Less than 1 min" {
		t.Errorf("reading_time = %q", got.ReadingTime)
	}
}

func TestStatsFromStdin(t *testing.T) {
	out, err := runCLI(t, strings.Repeat("word ", 1000), "stats")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	for _, want := range []string{"Words", "1,000", "Reading time", "5 min"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStatsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("word ", 226)), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := runCLI(t, "", "stats", path, "--output", "json")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if !strings.Contains(out, `"reading_time": "2 min"`) {
		t.Errorf("expected 2 min reading time, got %s", out)
	}

	if _, err := runCLI(t, "", "stats", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStatsUsesConfiguredReadingSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textmetrics.toml")
	if err := os.WriteFile(path, []byte("[metrics]\nwords_per_minute = 100.0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCLI(t, "", "--config", path, "stats", "--text", strings.Repeat("word ", 150), "-o", "json")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if !strings.Contains(out, `"reading_time": "2 min"`) {
		t.Errorf("expected config reading speed to apply, got %s", out)
	}

	out, err = runCLI(t, "", "--config", path, "stats", "--wpm", "300", "--text", strings.Repeat("word ", 150), "-o", "json")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if !strings.Contains(out, `"reading_time": "Less than 1 min"`) {
		t.Errorf("expected --wpm to override config, got %s", out)
	}
}

func TestCompare(t *testing.T) {
	out, err := runCLI(t, "", "compare", "--a", "a b", "--b", "A B C", "-o", "json")
	if err != nil {
		t.Fatalf("compare returned error: %v", err)
	}

	var got compareOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Score != 0.6667 || got.Intersection != 2 || got.Union != 3 {
		t.Errorf("unexpected result: %+v", got)
	}
	if got.Passed {
		t.Error("0.6667 should be below the default threshold")
	}

	out, err = runCLI(t, "", "compare", "--a", "same words", "--b", "Same Words", "--threshold", "0.9")
	if err != nil {
		t.Fatalf("compare returned error: %v", err)
	}
	for _, want := range []string{"100.00%", "90.00%", "at or above threshold"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(a, []byte("a b c"), 0o644); err != nil {
		t.Fatalf("write a: %v", err)
	}

	out, err := runCLI(t, "x y z", "compare", "--a-file", a, "--b-file", "-", "-o", "json")
	if err != nil {
		t.Fatalf("compare returned error: %v", err)
	}
	if !strings.Contains(out, `"score": 0,`) {
		t.Errorf("expected zero score for disjoint texts, got %s", out)
	}
}

func TestCompareEmptyTexts(t *testing.T) {
	out, err := runCLI(t, "", "compare", "--a", "", "--b", "", "-o", "json")
	if err != nil {
		t.Fatalf("compare returned error: %v", err)
	}
	if !strings.Contains(out, `"union": 0`) || !strings.Contains(out, `"score": 0,`) {
		t.Errorf("expected empty union to score 0, got %s", out)
	}
}

func TestCLIErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Missing second text", []string{"compare", "--a", "text"}},
		{"Both inline and file", []string{"compare", "--a", "x", "--a-file", "y", "--b", "z"}},
		{"Threshold out of range", []string{"compare", "--a", "x", "--b", "y", "--threshold", "2"}},
		{"Unknown output", []string{"stats", "--text", "x", "-o", "yaml"}},
		{"Text and file", []string{"stats", "file.txt", "--text", "x"}},
		{"Invalid reading speed", []string{"stats", "--text", "x", "--wpm", "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runCLI(t, "", tc.args...); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textmetrics.toml")

	out, err := runCLI(t, "", "config", "init", path)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected path in output, got %q", out)
	}

	out, err = runCLI(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "words_per_minute = 225") {
		t.Errorf("expected reading speed in output, got:\n%s", out)
	}
}
