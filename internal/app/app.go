package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/fsutil"
	"github.com/vk/nestdi/internal/hcl"
	"github.com/vk/nestdi/internal/registry"
	"github.com/vk/nestdi/internal/yamlloader"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders []config.Loader
	modules []registry.Module
	scenes  *sceneCache
}

// NewApp creates an App that writes reports to outW and logs to logW.
// modules declare capability families in addition to those in the scene.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "command", cfg.Command)
	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loaders: []config.Loader{hcl.NewLoader(), yamlloader.NewLoader()},
		modules: modules,
		scenes:  newSceneCache(),
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// loadScene runs every loader over the scene paths and merges what they find.
func (a *App) loadScene(ctx context.Context) (*config.Scene, error) {
	var parts []*config.Scene
	for _, l := range a.loaders {
		files, err := fsutil.FindFiles(a.config.ScenePaths, l.Extensions()...)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			continue
		}
		part, err := a.scenes.load(ctx, l, files)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no scene files found in %v", a.config.ScenePaths)
	}
	scene, err := config.Merge(parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Scene loaded.", "families", len(scene.Families), "queries", len(scene.Queries))
	return scene, nil
}

// families builds the frozen family table from the compiled-in modules and
// the scene. It returns nil when nothing declares a family, so that family
// names are then used verbatim. Declaration conflicts panic inside the
// registry and are reported here as errors.
func (a *App) families(scene *config.Scene) (reg *registry.Registry, err error) {
	if len(a.modules) == 0 && len(scene.Families) == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			reg, err = nil, fmt.Errorf("invalid family declarations: %v", r)
		}
	}()
	reg = registry.New()
	reg.Load(a.modules...)
	reg.Load(sceneFamilies(scene.Families))
	reg.Freeze()
	a.logger.Debug("Family table frozen.", "families", reg.Families())
	return reg, nil
}
