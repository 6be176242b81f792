package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mdpress/internal/convert"
)

func TestFileSink_JSONAggregate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	_ = s.Write(Event{Type: "run.started"})
	_ = s.Write(convert.Result{Source: "a.md", Status: convert.StatusOK, Output: "til/a.html"})
	_ = s.Write(convert.Result{Source: "b.txt", Status: convert.StatusError, Message: "boom"})
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	var results []convert.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestFileSink_NDJSONStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.ndjson")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	_ = s.Write(Event{Type: "run.started", Files: 1})
	_ = s.Write(convert.Result{Source: "a.md", Status: convert.StatusOK})
	_ = s.Write(Event{Type: "run.finished", ExitCode: 0})
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 NDJSON lines, got %d", len(lines))
	}
	for i, line := range lines {
		var e Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
	}
}

func TestFileSink_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "results.json")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestFileSink_RejectsUnknownExtension(t *testing.T) {
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "results.xml"), ""); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "results.out"), "yaml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
