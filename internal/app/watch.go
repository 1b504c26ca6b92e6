package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/nestdi/internal/watch"
)

// watch runs once immediately and again after every settled change to the
// scene files, until ctx is cancelled. Failures of a single pass are logged
// and reported, not fatal.
func (a *App) watch(ctx context.Context, once func(context.Context) error) error {
	var extensions []string
	for _, l := range a.loaders {
		extensions = append(extensions, l.Extensions()...)
	}
	w, err := watch.New(watch.Config{
		Paths:      a.config.ScenePaths,
		Extensions: extensions,
		Debounce:   a.config.Debounce,
		Logger:     a.logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}
	a.logger.Info("Watching scene for changes.", "paths", a.config.ScenePaths, "debounce", a.config.Debounce)

	pass := func() {
		if err := once(ctx); err != nil {
			var qerr *QueryError
			if !errors.As(err, &qerr) {
				fmt.Fprintf(a.outW, "error: %v\n", err)
			}
			a.logger.Warn("Scene pass failed.", "error", err)
		}
	}

	pass()
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Watch stopped.")
			return nil
		case <-onChange:
			fmt.Fprintln(a.outW, "== scene changed, reloading")
			pass()
		}
	}
}
