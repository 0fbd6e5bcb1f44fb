package main

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/baditaflorin/go_text_metrics/internal/config"
)

func TestWholeSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want int
	}{
		{"Sub-second rounds up", 500 * time.Millisecond, 1},
		{"One nanosecond", time.Nanosecond, 1},
		{"Exact seconds", 30 * time.Second, 30},
		{"Fraction above whole", 1500 * time.Millisecond, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := wholeSeconds(tc.in); got != tc.want {
				t.Errorf("wholeSeconds(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestSubSecondTimeoutOverrideValidates(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ReadTimeoutSeconds = wholeSeconds(250 * time.Millisecond)
	cfg.Server.WriteTimeoutSeconds = wholeSeconds(750 * time.Millisecond)

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.ReadTimeout() != time.Second || cfg.WriteTimeout() != time.Second {
		t.Errorf("timeouts = %v/%v, want 1s/1s", cfg.ReadTimeout(), cfg.WriteTimeout())
	}
}

func TestRunFailsWhenPortIsTaken(t *testing.T) {
	ln, err := net.Listen("tcp4", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	logFile := filepath.Join(t.TempDir(), "server.log")
	err = run([]string{
		"-port", strconv.Itoa(port),
		"-warm-up=false",
		"-log-file", logFile,
	})
	if err == nil {
		t.Fatal("expected an error when the port is already in use")
	}
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run([]string{"-config", path, "-log-file", filepath.Join(dir, "server.log")}); err == nil {
		t.Fatal("expected an error for port 0")
	}
	if err := run([]string{"-unknown-flag"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}
