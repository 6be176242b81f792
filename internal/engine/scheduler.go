package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"mdpress/internal/convert"
)

// errFailFast marks the group cancellation after the first conversion
// error. The failure itself was already streamed as an ERROR result, so
// callers treat this as a partial failure, not a fatal one.
var errFailFast = errors.New("build stopped after first conversion error")

// Scheduler runs planned conversions on a bounded worker pool.
type Scheduler struct {
	opts        convert.Options
	concurrency int
	failFast    bool
}

func NewScheduler(opts convert.Options, concurrency int, failFast bool) (*Scheduler, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	return &Scheduler{opts: opts, concurrency: concurrency, failFast: failFast}, nil
}

// Execute streams one convert.Result per planned source.
//
// Channel semantics:
//   - In the normal (non-canceled) case, exactly one Result is sent per source.
//   - On context cancellation (or fail-fast), fewer results may be emitted.
//   - Both channels are closed reliably; the error channel carries at most
//     one fatal error. Per-file conversion failures are data (StatusError
//     results), not fatal errors.
func (s *Scheduler) Execute(ctx context.Context, plan *BuildPlan) (<-chan convert.Result, <-chan error) {
	resultsCh := make(chan convert.Result)
	errCh := make(chan error, 1)

	go func() {
		defer close(resultsCh)
		defer close(errCh)

		if ctx == nil {
			errCh <- errors.New("context is nil")
			return
		}
		if plan == nil {
			errCh <- errors.New("build plan is nil")
			return
		}

		g, runCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)

		for _, ps := range plan.Sources {
			if runCtx.Err() != nil {
				break
			}
			ps := ps
			g.Go(func() error {
				res := s.convertOne(runCtx, ps)
				select {
				case resultsCh <- res:
				case <-runCtx.Done():
					return runCtx.Err()
				}
				if s.failFast && res.Status == convert.StatusError {
					return fmt.Errorf("%s: %s: %w", res.Source, res.Message, errFailFast)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			errCh <- err
			return
		}
		if err := ctx.Err(); err != nil {
			errCh <- err
		}
	}()

	return resultsCh, errCh
}

// convertOne reads, converts, and writes a single source. All failures are
// folded into the returned Result.
func (s *Scheduler) convertOne(ctx context.Context, ps PlannedSource) convert.Result {
	res := convert.Result{Source: ps.Source.Path}

	if ps.Converter == nil {
		res.Status = convert.StatusSkipped
		res.Message = fmt.Sprintf("unsupported extension %q (supported: %v)", filepath.Ext(ps.Source.Rel), convert.Extensions())
		return res
	}
	res.Converter = ps.Converter.ID()
	res.Output = ps.Output

	start := time.Now()

	src, err := os.ReadFile(ps.Source.Path)
	if err != nil {
		res.Status = convert.StatusError
		res.Message = fmt.Sprintf("read source: %v", err)
		res.Duration = time.Since(start)
		return res
	}

	opts := s.opts
	opts.SourceName = baseName(ps.Source.Rel)

	html, err := ps.Converter.Convert(ctx, src, opts)
	if err != nil {
		res.Status = convert.StatusError
		res.Message = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	if dir := filepath.Dir(ps.Output); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			res.Status = convert.StatusError
			res.Message = fmt.Sprintf("create output directory: %v", err)
			res.Duration = time.Since(start)
			return res
		}
	}
	if err := os.WriteFile(ps.Output, []byte(html), 0o644); err != nil {
		res.Status = convert.StatusError
		res.Message = fmt.Sprintf("write output: %v", err)
		res.Duration = time.Since(start)
		return res
	}

	res.Status = convert.StatusOK
	res.Bytes = len(html)
	res.Duration = time.Since(start)
	return res
}

func baseName(rel string) string {
	base := filepath.Base(rel)
	return base[:len(base)-len(filepath.Ext(base))]
}
