package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "oxmail.log")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Info("homepage loaded", "stories", 3)
	Debug("hidden at info level")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "homepage loaded") || !strings.Contains(got, "stories=3") {
		t.Fatalf("expected info line in log, got %q", got)
	}
	if strings.Contains(got, "hidden at info level") {
		t.Fatalf("debug line should be filtered at info level, got %q", got)
	}
}

func TestInit_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxmail.log")
	if err := Init(path, true); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	Debug("key pressed", "key", "down")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "key pressed") {
		t.Fatalf("expected debug line in log, got %q", string(data))
	}
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	Close()
	Warn("nobody is listening")
	Error("still fine")
}
