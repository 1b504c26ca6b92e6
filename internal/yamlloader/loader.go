package yamlloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML document reachable from paths and merges them.
// Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML scene files found in %v", paths)
	}

	var parts []*config.Scene
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		docs, err := decodeAll(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		for i, doc := range docs {
			part, err := translate(doc)
			if err != nil {
				return nil, fmt.Errorf("in %s (document %d): %w", file, i+1, err)
			}
			parts = append(parts, part)
		}
		logger.Debug("Decoded YAML file.", "file", file, "documents", len(docs))
	}

	return config.Merge(parts...)
}

func decodeAll(data []byte) ([]*document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var docs []*document
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
}
