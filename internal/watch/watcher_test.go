package watch_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/nestdi/internal/watch"
)

func start(t *testing.T, paths ...string) <-chan struct{} {
	t.Helper()
	w, err := watch.New(watch.Config{
		Paths:      paths,
		Extensions: []string{".hcl"},
		Debounce:   50 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err)
	return onChange
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.hcl")
	require.NoError(t, os.WriteFile(scene, []byte("a"), 0o644))

	onChange := start(t, scene)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(scene, []byte(fmt.Sprintf("b%d", i)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
	select {
	case <-onChange:
		t.Fatal("writes within the debounce window should coalesce")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.hcl")
	other := filepath.Join(dir, "notes.txt")
	sibling := filepath.Join(dir, "other.hcl")
	require.NoError(t, os.WriteFile(scene, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(sibling, []byte("a"), 0o644))

	onChange := start(t, scene)

	require.NoError(t, os.WriteFile(other, []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(sibling, []byte("b"), 0o644))

	select {
	case <-onChange:
		t.Fatal("only the watched scene file should trigger")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Directory(t *testing.T) {
	dir := t.TempDir()
	onChange := start(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.hcl"), []byte("a"), 0o644))

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("a new scene file in a watched directory should trigger")
	}
}

func TestNew_MissingPath(t *testing.T) {
	_, err := watch.New(watch.Config{Paths: []string{filepath.Join(t.TempDir(), "missing.hcl")}, Extensions: []string{".hcl"}})
	require.Error(t, err)
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := watch.New(watch.Config{
		Paths:      []string{t.TempDir()},
		Extensions: []string{".hcl"},
		Debounce:   10 * time.Millisecond,
	})
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NotPanics(t, func() { require.NoError(t, w.Stop()) })
}
