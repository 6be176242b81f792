package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mdpress/internal/config"
	"mdpress/internal/convert"
	"mdpress/internal/output"
)

func exitCodeForRun(fatal, partial, skipped bool) int {
	// Exit code contract:
	// 0 = all sources converted
	// 1 = some sources were skipped (unsupported extension)
	// 2 = partial failure (some sources errored)
	// 3 = fatal error (build did not run)
	if fatal {
		return 3
	}
	if partial {
		return 2
	}
	if skipped {
		return 1
	}
	return 0
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// prepareOutputDir makes the output directory exist. With Clean set it is
// deleted and recreated first so stale pages never survive a rebuild.
func prepareOutputDir(cfg *config.Config) error {
	dir := cfg.Output.Dir
	if cfg.Output.Clean {
		if _, err := os.Stat(dir); err == nil {
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("remove output directory %s: %w", dir, err)
			}
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

func maybeDryRun(cfg *config.Config, plan *BuildPlan) (int, bool) {
	if !cfg.Targeting.DryRun {
		return 0, false
	}

	fmt.Println("Build plan:")
	for _, ps := range plan.Sources {
		if ps.Converter == nil {
			fmt.Printf("%s (skip: unsupported extension)\n", ps.Source.Path)
			continue
		}
		fmt.Printf("%s -> %s (%s)\n", ps.Source.Path, ps.Output, ps.Converter.ID())
	}
	return 0, true
}

type Engine struct {
	// schedulerExecute is a test seam for streaming execution.
	// If nil, Engine uses the real scheduler.
	schedulerExecute func(ctx context.Context, cfg *config.Config, plan *BuildPlan) (<-chan convert.Result, <-chan error)
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) executePlanStream(ctx context.Context, cfg *config.Config, plan *BuildPlan) (<-chan convert.Result, <-chan error) {
	if e.schedulerExecute != nil {
		return e.schedulerExecute(ctx, cfg, plan)
	}

	opts := convert.Options{
		Stylesheet: cfg.Page.Stylesheet,
		Lang:       cfg.Page.Lang,
		Title:      cfg.Page.Title,
	}
	scheduler, err := NewScheduler(opts, cfg.Runtime.Concurrency, cfg.Runtime.FailFast)
	if err != nil {
		resCh := make(chan convert.Result)
		errCh := make(chan error, 1)
		close(resCh)
		errCh <- err
		close(errCh)
		return resCh, errCh
	}
	return scheduler.Execute(ctx, plan)
}

// consumeResults forwards streamed per-file results to the output sinks and
// tallies statuses for the exit code.
func consumeResults(resCh <-chan convert.Result, outMgr *output.Manager) (hasErrors, hasSkips bool) {
	for res := range resCh {
		_ = outMgr.Write(output.Event{Type: "file.started", Source: res.Source})
		_ = outMgr.Write(res)
		_ = outMgr.Write(output.Event{Type: "file.finished", Source: res.Source})

		switch res.Status {
		case convert.StatusError:
			hasErrors = true
		case convert.StatusSkipped:
			hasSkips = true
		}
	}
	return hasErrors, hasSkips
}

func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	sources, explicitFile, err := ResolveSources(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving sources: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	// An explicitly named file is built as-is; patterns only shape
	// directory builds.
	if !explicitFile {
		sources = FilterSources(sources, cfg)
	}
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Found %d source files.\n", len(sources))
	}

	plan := NewBuildPlan(sources, cfg.Output.Dir)

	if code, ok := maybeDryRun(cfg, plan); ok {
		return code
	}

	if err := prepareOutputDir(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing output directory: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, false, false)
	}
	defer outMgr.Close()

	runCtx, cancel := context.WithTimeout(ctx, cfg.Runtime.Timeout)
	defer cancel()

	_ = outMgr.Write(output.Event{Type: "run.started", Files: len(plan.Sources), Converters: len(convert.List())})

	resCh, errCh := e.executePlanStream(runCtx, cfg, plan)

	hasErrors, hasSkips := consumeResults(resCh, outMgr)

	var schedErr error
	// Drain scheduler errors; keep one non-nil error.
	for err := range errCh {
		if err != nil {
			schedErr = err
		}
	}
	if schedErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", schedErr)
	}

	// A fail-fast stop is a partial failure: the triggering error was
	// already streamed as an ERROR result.
	fatal := schedErr != nil && !errors.Is(schedErr, errFailFast)
	code := exitCodeForRun(fatal, hasErrors, hasSkips)
	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
