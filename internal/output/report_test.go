package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mdpress/internal/convert"
)

func TestReportSink_WritesMarkdownSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s, err := NewReportSink(path)
	if err != nil {
		t.Fatalf("NewReportSink returned error: %v", err)
	}

	_ = s.Write(Event{Type: "run.started", Files: 3})
	_ = s.Write(convert.Result{
		Source: "notes/a.md", Output: "til/a.html", Converter: "markdown",
		Status: convert.StatusOK, Bytes: 512, Duration: 3 * time.Millisecond,
	})
	_ = s.Write(convert.Result{
		Source: "notes/b.bin", Status: convert.StatusSkipped,
		Message: "unsupported extension \".bin\"",
	})
	_ = s.Write(convert.Result{
		Source: "notes/c.md", Status: convert.StatusError, Message: "parse frontmatter: bad yaml",
	})
	_ = s.Write(Event{Type: "run.finished", ExitCode: 2})
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(raw)

	for _, want := range []string{
		"# Build Report",
		"| Sources | 3 |",
		"| Converted | 1 |",
		"| Skipped | 1 |",
		"| Errors | 1 |",
		"| Exit code | 2 |",
		"## Converted",
		"`notes/a.md` -> `til/a.html` (markdown, 512 bytes)",
		"## Skipped",
		"## Errors",
		"`notes/c.md`: parse frontmatter: bad yaml",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("expected %q in report:\n%s", want, report)
		}
	}
}

func TestReportSink_EmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s, err := NewReportSink(path)
	if err != nil {
		t.Fatalf("NewReportSink returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(raw)
	if !strings.Contains(report, "| Sources | 0 |") {
		t.Fatalf("expected zero-source summary:\n%s", report)
	}
	if strings.Contains(report, "## Errors") {
		t.Fatalf("empty run must not have an Errors section:\n%s", report)
	}
}
