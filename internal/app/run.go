package app

import (
	"context"
	"fmt"

	"github.com/vk/nestdi/internal/builder"
	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
)

// QueryError reports how many queries of a run failed.
type QueryError struct {
	Failed int
	Total  int
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%d of %d queries failed", e.Failed, e.Total)
}

// Execute performs the configured command, once or, in watch mode, every
// time the scene changes until ctx is cancelled.
func (a *App) Execute(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	once := a.Run
	if a.config.Command == CommandInspect {
		once = a.Inspect
	}
	if a.config.Watch {
		return a.watch(ctx, once)
	}
	return once(ctx)
}

// session loads the scene and attaches it.
func (a *App) session(ctx context.Context) (*builder.Session, *config.Scene, error) {
	scene, err := a.loadScene(ctx)
	if err != nil {
		return nil, nil, err
	}
	families, err := a.families(scene)
	if err != nil {
		return nil, nil, err
	}
	s, err := builder.Build(ctx, scene, families)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build scene: %w", err)
	}
	return s, scene, nil
}

// Run evaluates the scene's queries: first against the freshly attached
// tree, then again after the detach list has been removed. One line is
// printed per query.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	s, scene, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	total, failed := 0, 0
	report := func(results []builder.Result) {
		for _, r := range results {
			fmt.Fprintln(a.outW, r.String())
			total++
			if r.Err != nil {
				failed++
			}
		}
	}

	report(s.RunQueries(scene.Queries, false))
	for _, path := range scene.Detach {
		if err := s.Detach(path); err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "-- detached %s\n", path)
	}
	report(s.RunQueries(scene.Queries, true))

	a.logger.Info("Queries evaluated.", "total", total, "failed", failed)
	if failed > 0 {
		return &QueryError{Failed: failed, Total: total}
	}
	return nil
}
