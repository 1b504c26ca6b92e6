package app

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Command selects what the App does with the loaded scene.
type Command string

const (
	CommandRun     Command = "run"
	CommandInspect Command = "inspect"
)

// DefaultDebounce is the quiet period after the last file change before a
// watched scene is reloaded.
const DefaultDebounce = 300 * time.Millisecond

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command    Command
	ScenePaths []string // scene files or directories

	LogFormat string
	LogLevel  string

	Watch    bool
	Debounce time.Duration
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ScenePaths) == 0 {
		return nil, errors.New("at least one scene path is required")
	}
	switch cfg.Command {
	case CommandRun, CommandInspect:
	case "":
		cfg.Command = CommandRun
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains([]string{"text", "json"}, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	if cfg.Debounce < 0 {
		return nil, fmt.Errorf("debounce must not be negative, got %s", cfg.Debounce)
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &cfg, nil
}
