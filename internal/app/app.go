// Package app implements the application layer for esb.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.trai.ch/esb/internal/adapters/watcher"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/esb/internal/engine/changecache"
	"go.trai.ch/esb/internal/engine/gate"
	"go.trai.ch/esb/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App is the bridge between the build hooks and the generation pipeline.
//
// It owns the state shared by every generation of the process: the resolved
// options, the worker connection, the change cache and the exclusive gate.
type App struct {
	resolver ports.ConfigResolver
	launcher ports.WorkerLauncher
	console  ports.Console
	files    ports.FileSync
	watcher  ports.Watcher
	tracer   ports.Tracer
	logger   ports.Logger

	overrides domain.OptionSet
	options   atomic.Pointer[domain.Options]
	matcher   atomic.Pointer[watcher.Matcher]

	cache *changecache.Cache
	gate  *gate.Gate

	mu       sync.Mutex
	worker   ports.Transpiler
	pipeline *pipeline.Pipeline
	// stale is set when the running worker no longer matches the options.
	stale atomic.Bool
}

// New creates a new App instance.
func New(
	resolver ports.ConfigResolver,
	launcher ports.WorkerLauncher,
	console ports.Console,
	files ports.FileSync,
	w ports.Watcher,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		resolver: resolver,
		launcher: launcher,
		console:  console,
		files:    files,
		watcher:  w,
		tracer:   tracer,
		logger:   logger,
		cache:    changecache.New(),
		gate:     gate.New(),
	}
}

// Load resolves the options for the first time. The overrides layer is kept
// and takes precedence on every later reload.
func (a *App) Load(ctx context.Context, overrides domain.OptionSet) error {
	a.overrides = overrides
	return a.reload(ctx)
}

// Options returns the current options. Load must have been called.
func (a *App) Options() domain.Options {
	return *a.options.Load()
}

// reload resolves the options again and replaces the current value as a whole.
func (a *App) reload(ctx context.Context) error {
	opts, err := a.resolver.Load(ctx, a.overrides)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve options")
	}

	matcher, err := watcher.NewMatcher(opts)
	if err != nil {
		return err
	}

	if prev := a.options.Swap(&opts); prev != nil && workerChanged(*prev, opts) {
		a.stale.Store(true)
	}
	a.matcher.Store(matcher)

	return nil
}

// workerChanged reports whether a worker started for prev cannot serve next.
func workerChanged(prev, next domain.Options) bool {
	return prev.WorkerCommand != next.WorkerCommand || prev.ProjectRoot != next.ProjectRoot
}

// workerStopped reports whether err shows the worker connection is gone.
func workerStopped(err error) bool {
	return errors.Is(err, domain.ErrWorkerClosed) || errors.Is(err, domain.ErrWorkerWriteFailed)
}

// OnBeforeBuild generates the Elm modules.
//
// Calls made while another generation is running wait for it to finish and
// return a nil report without generating again.
func (a *App) OnBeforeBuild(ctx context.Context) (*pipeline.Report, error) {
	var report *pipeline.Report

	_, err := a.gate.RunExclusive(ctx, func(ctx context.Context) error {
		opts := a.Options()

		p, err := a.ensurePipeline(ctx, opts)
		if err != nil {
			return err
		}

		report, err = p.Generate(ctx, opts)
		a.logReport(opts, report)
		if workerStopped(err) {
			a.logger.Warn("worker stopped, restarting it on the next run")
			a.discardWorker(ctx)
		}
		return err
	})

	return report, err
}

// OnFileChanged regenerates when path affects the generated code. A change of
// a reload trigger resolves the options again first. It reports whether a
// generation was started.
func (a *App) OnFileChanged(ctx context.Context, path string) (bool, error) {
	return a.handleChange(ctx, a.matcher.Load().Classify(path))
}

func (a *App) handleChange(ctx context.Context, change watcher.Change) (bool, error) {
	switch change {
	case watcher.ChangeReload:
		a.logger.Info("configuration changed, reloading")
		if err := a.reload(ctx); err != nil {
			return false, err
		}
	case watcher.ChangeSource:
	default:
		return false, nil
	}

	_, err := a.OnBeforeBuild(ctx)
	return true, err
}

// Close stops the worker if it was started.
func (a *App) Close(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.worker == nil {
		return nil
	}

	err := a.worker.Close(ctx)
	a.worker = nil
	a.pipeline = nil
	return err
}

// discardWorker closes the current worker so the next run launches a new one.
func (a *App) discardWorker(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closeWorkerLocked(ctx)
}

// closeWorkerLocked must be called with mu held.
func (a *App) closeWorkerLocked(ctx context.Context) {
	if a.worker == nil {
		return
	}
	if err := a.worker.Close(ctx); err != nil {
		a.logger.Debug("closing worker: " + err.Error())
	}
	a.worker = nil
	a.pipeline = nil
}

// ensurePipeline starts the worker on first use, and again after it stopped
// or after a reload changed how it is started.
func (a *App) ensurePipeline(ctx context.Context, opts domain.Options) (*pipeline.Pipeline, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stale.Swap(false) {
		a.closeWorkerLocked(ctx)
	}

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	if !opts.EnableRouting && !opts.EnableTranslations {
		return pipeline.New(a.console, nil, a.files, a.cache, a.tracer, a.logger), nil
	}

	worker, err := a.launcher.Launch(ctx, opts)
	if err != nil {
		return nil, err
	}

	a.worker = worker
	a.pipeline = pipeline.New(a.console, worker, a.files, a.cache, a.tracer, a.logger)

	return a.pipeline, nil
}

func (a *App) logReport(opts domain.Options, report *pipeline.Report) {
	if report == nil {
		return
	}

	for _, result := range report.Results() {
		switch result.Outcome {
		case domain.OutcomeWritten:
			a.logger.Info("generated " + relative(opts.ProjectRoot, result.Output))
		case domain.OutcomeCached, domain.OutcomeUnchanged:
			a.logger.Debug(string(result.Outcome) + " " + relative(opts.ProjectRoot, result.Source))
		}
	}
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
