package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnableColorOutput(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	t.Setenv("NO_COLOR", "")
	if EnableColorOutput(f) {
		t.Error("EnableColorOutput() = true with NO_COLOR set")
	}
	os.Unsetenv("NO_COLOR")
	t.Setenv("TERM", "xterm")
	if EnableColorOutput(f) {
		t.Error("EnableColorOutput() = true for regular file")
	}
}

func TestColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !colorDisabled() {
		t.Error("colorDisabled() = false with NO_COLOR")
	}
	os.Unsetenv("NO_COLOR")

	t.Setenv("TERM", "dumb")
	if !colorDisabled() {
		t.Error("colorDisabled() = false for dumb terminal")
	}
	t.Setenv("TERM", "xterm-256color")
	if colorDisabled() {
		t.Error("colorDisabled() = true for capable terminal")
	}
}
