package app

import (
	"context"

	"go.trai.ch/esb/internal/adapters/watcher"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch generates whenever a watched file changes, until ctx ends.
//
// Changes are coalesced by a debouncer. Generation failures are logged and do
// not stop watching; the next change gets another chance.
func (a *App) Watch(ctx context.Context) error {
	root := a.Options().Path(".")

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "root", root)
	}
	a.logger.Info("watching " + root + " for changes")

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		a.onBatch(ctx, paths)
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}

	return a.watcher.Stop()
}

// onBatch handles a debounced batch with at most one generation.
func (a *App) onBatch(ctx context.Context, paths []string) {
	if ctx.Err() != nil {
		return
	}

	matcher := a.matcher.Load()

	change := watcher.ChangeIgnored
	for _, path := range paths {
		change = max(change, matcher.Classify(path))
	}

	if _, err := a.handleChange(ctx, change); err != nil {
		a.logger.Error(err)
	}
}
