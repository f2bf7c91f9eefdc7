package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake/internal/domain"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.ui != "window" {
		t.Fatalf("expected window ui, got %q", opts.ui)
	}
	f := opts.config.Field()
	if f.Width != 25 || f.Height != 25 {
		t.Fatalf("expected 25x25 board, got %dx%d", f.Width, f.Height)
	}
	if opts.config.TickInterval != 75*time.Millisecond {
		t.Fatalf("expected 75ms tick, got %v", opts.config.TickInterval)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{"-ui", "term", "-width", "400", "-height", "300", "-tick", "120ms", "-seed", "5"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.ui != "term" || opts.config.Seed != 5 {
		t.Fatalf("unexpected options %+v", opts)
	}
	f := opts.config.Field()
	if f.Width != 16 || f.Height != 12 {
		t.Fatalf("expected 16x12 board, got %dx%d", f.Width, f.Height)
	}
}

func TestParseFlagsRejects(t *testing.T) {
	if _, err := parseFlags([]string{"-ui", "gtk"}); err == nil || !strings.Contains(err.Error(), "unsupported ui") {
		t.Fatalf("expected unsupported ui error, got %v", err)
	}
	if _, err := parseFlags([]string{"-width", "50"}); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRedirectLogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	restore, err := redirectLog(path)
	if err != nil {
		t.Fatalf("redirect: %v", err)
	}
	log.Print("hello from the terminal frontend")
	restore()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from the terminal frontend") {
		t.Fatalf("log line missing, got %q", data)
	}
}
