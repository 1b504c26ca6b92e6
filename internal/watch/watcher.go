// Package watch provides debounced file system watching for scene files.
package watch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors scene files and directories and signals after a burst of
// changes has settled.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	logger     *slog.Logger
	debounce   time.Duration
	extensions []string

	files map[string]bool // explicitly watched files
	dirs  map[string]bool // directories whose matching files are all watched

	onChange chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// Config holds watcher configuration options.
type Config struct {
	Paths      []string
	Extensions []string
	Debounce   time.Duration
	Logger     *slog.Logger
}

// New creates a watcher. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		fsWatcher:  fsw,
		logger:     logger,
		debounce:   cfg.Debounce,
		extensions: cfg.Extensions,
		files:      make(map[string]bool),
		dirs:       make(map[string]bool),
		onChange:   make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	for _, p := range cfg.Paths {
		if err := w.track(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// track records what to watch for p: every directory below a directory
// path, or the containing directory of a file path.
func (w *Watcher) track(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("watching %s: %w", p, err)
	}
	if !info.IsDir() {
		w.files[abs] = true
		return nil
	}
	return filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			w.dirs[path] = true
		}
		return nil
	})
}

// Start begins watching and returns the change notification channel.
func (w *Watcher) Start() (<-chan struct{}, error) {
	watched := make(map[string]bool)
	for dir := range w.dirs {
		watched[dir] = true
	}
	for file := range w.files {
		watched[filepath.Dir(file)] = true
	}
	for dir := range watched {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()
	return w.onChange, nil
}

// Stop terminates the watcher and releases resources. Later calls return
// the result of the first one.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopErr = w.fsWatcher.Close()
	})
	return w.stopErr
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)
	timerC := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			w.logger.Debug("Scene file changed.", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-timerC():
			if pending {
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error.", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports whether event touches a watched scene file.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if !slices.Contains(w.extensions, strings.ToLower(filepath.Ext(event.Name))) {
		return false
	}
	name := filepath.Clean(event.Name)
	return w.files[name] || w.dirs[filepath.Dir(name)]
}
