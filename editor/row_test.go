package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestOpenTrimsLineEnding(t *testing.T) {
	m, err := Open(writeTempFile(t, "ab\r\n"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(m.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(m.Rows))
	}
	if string(m.Rows[0].Chars) != "ab" {
		t.Errorf("Expected row \"ab\", got %q", m.Rows[0].Chars)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	m, err := Open(writeTempFile(t, ""))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(m.Rows) != 0 {
		t.Errorf("Expected empty model, got %d row(s)", len(m.Rows))
	}
}

func TestOpenReadsFirstLineOnly(t *testing.T) {
	m, err := Open(writeTempFile(t, "one\ntwo\nthree\n"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(m.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(m.Rows))
	}
	if string(m.Rows[0].Chars) != "one" {
		t.Errorf("Expected row \"one\", got %q", m.Rows[0].Chars)
	}
}

func TestOpenLineWithoutNewline(t *testing.T) {
	m, err := Open(writeTempFile(t, "no newline"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(m.Rows) != 1 || string(m.Rows[0].Chars) != "no newline" {
		t.Errorf("Expected single row \"no newline\", got %v", m.Rows)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for missing file")
	}
}
