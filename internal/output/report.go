package output

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"mdpress/internal/convert"
)

// ReportSink aggregates results during the build and writes a Markdown
// build report on Close.
type ReportSink struct {
	path         string
	file         *os.File
	mu           sync.Mutex
	results      []convert.Result
	exitCode     int
	haveExitCode bool
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{
		path: path,
		file: f,
	}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t := v.(type) {
	case convert.Result:
		s.results = append(s.results, t)
	case Event:
		if t.Type == "run.finished" {
			s.exitCode = t.ExitCode
			s.haveExitCode = true
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]convert.Result, len(s.results))
	copy(results, s.results)
	sort.Slice(results, func(i, j int) bool { return results[i].Source < results[j].Source })

	var ok, skipped, errored []convert.Result
	var totalBytes int
	var totalDuration time.Duration
	for _, r := range results {
		totalBytes += r.Bytes
		totalDuration += r.Duration
		switch r.Status {
		case convert.StatusOK:
			ok = append(ok, r)
		case convert.StatusSkipped:
			skipped = append(skipped, r)
		case convert.StatusError:
			errored = append(errored, r)
		}
	}

	w := func(format string, args ...any) {
		fmt.Fprintf(s.file, format, args...)
	}

	w("# Build Report\n\n")
	w("Generated: %s\n\n", time.Now().UTC().Format(time.RFC3339))

	w("## Summary\n\n")
	w("| Metric | Value |\n")
	w("| --- | --- |\n")
	w("| Sources | %d |\n", len(results))
	w("| Converted | %d |\n", len(ok))
	w("| Skipped | %d |\n", len(skipped))
	w("| Errors | %d |\n", len(errored))
	w("| Bytes written | %d |\n", totalBytes)
	w("| Conversion time | %s |\n", totalDuration.Round(time.Millisecond))
	if s.haveExitCode {
		w("| Exit code | %d |\n", s.exitCode)
	}
	w("\n")

	if len(ok) > 0 {
		w("## Converted\n\n")
		for _, r := range ok {
			w("- `%s` -> `%s` (%s, %d bytes)\n", r.Source, r.Output, r.Converter, r.Bytes)
		}
		w("\n")
	}

	if len(skipped) > 0 {
		w("## Skipped\n\n")
		for _, r := range skipped {
			w("- `%s`: %s\n", r.Source, r.Message)
		}
		w("\n")
	}

	if len(errored) > 0 {
		w("## Errors\n\n")
		for _, r := range errored {
			w("- `%s`: %s\n", r.Source, r.Message)
		}
		w("\n")
	}

	return s.file.Close()
}
