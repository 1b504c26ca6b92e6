package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/ctxlog"
)

const (
	sceneCacheExpiration = 10 * time.Minute
	sceneCacheCleanup    = 30 * time.Minute
)

// sceneCache holds parsed scene parts keyed by the identity of the files
// they came from. A file that is touched without being rewritten keeps its
// size and modification time, so watch mode does not parse it again.
type sceneCache struct {
	cache *gocache.Cache
}

func newSceneCache() *sceneCache {
	return &sceneCache{cache: gocache.New(sceneCacheExpiration, sceneCacheCleanup)}
}

// load returns the cached part for files or calls l.Load and caches the
// result. Files that cannot be stat'ed bypass the cache.
func (c *sceneCache) load(ctx context.Context, l config.Loader, files []string) (*config.Scene, error) {
	key, err := fingerprint(files)
	if err != nil {
		return l.Load(ctx, files...)
	}
	if v, found := c.cache.Get(key); found {
		if part, ok := v.(*config.Scene); ok {
			ctxlog.FromContext(ctx).Debug("Scene part served from cache.", "files", len(files))
			return part, nil
		}
	}
	part, err := l.Load(ctx, files...)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, part, gocache.DefaultExpiration)
	return part, nil
}

func fingerprint(files []string) (string, error) {
	var b strings.Builder
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s|%d|%d;", f, info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}
