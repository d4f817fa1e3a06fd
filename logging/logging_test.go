package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestColorHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColorHandler(&buf, slog.LevelInfo, true))

	logger.Info("dungeon generated", "rooms", 16, "seed", int64(7))
	logger.Warn("split retried", "rect", "(0,0 10x10)")
	logger.Error("generation failed")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"[INFO] dungeon generated rooms=16 seed=7",
		`[WARNING] split retried rect="(0,0 10x10)"`,
		"[ERROR] generation failed",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestColorHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColorHandler(&buf, slog.LevelDebug, true)).
		With("component", "server").
		WithGroup("req")

	logger.Debug("handled", "status", 200)

	if got, want := strings.TrimSpace(buf.String()), "[DEBUG] handled component=server req.status=200"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestColorHandlerColors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewColorHandler(&buf, slog.LevelInfo, false))
	logger.Warn("careful")

	if !strings.Contains(buf.String(), "\x1b[33m[WARNING]") {
		t.Errorf("warning prefix not yellow: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel accepted an unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dangian.log")
	logger, closer, err := New(Options{Level: slog.LevelInfo, File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("to the file", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "[INFO] to the file n=1" {
		t.Errorf("file contents = %q", got)
	}
}
