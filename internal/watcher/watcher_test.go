package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/italia/internal/catalog"
	"github.com/conneroisu/italia/internal/registry"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestEventTypeFromOp(t *testing.T) {
	assert.Equal(t, EventTypeCreated, eventType(fsnotify.Create|fsnotify.Write))
	assert.Equal(t, EventTypeModified, eventType(fsnotify.Write))
	assert.Equal(t, EventTypeDeleted, eventType(fsnotify.Remove))
	assert.Equal(t, EventTypeRenamed, eventType(fsnotify.Rename))
	assert.Equal(t, EventTypeModified, eventType(fsnotify.Chmod))
}

func TestDebouncerGroupsEvents(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	d.addEvent(ChangeEvent{Type: EventTypeCreated, Path: "b.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeModified, Path: "a.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeModified, Path: "b.yml"})

	select {
	case events := <-d.output:
		require.Len(t, events, 2)
		assert.Equal(t, "a.yml", events[0].Path)
		assert.Equal(t, "b.yml", events[1].Path)
		assert.Equal(t, EventTypeModified, events[1].Type)
	case <-time.After(time.Second):
		t.Fatal("debouncer did not flush")
	}

	select {
	case events := <-d.output:
		t.Fatalf("unexpected second batch: %v", events)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, newDebouncer(0).delay)
}

func TestFilters(t *testing.T) {
	same := SameFileFilter("conf/examples.yml")
	assert.True(t, same("conf/examples.yml"))
	assert.True(t, same("conf/./examples.yml"))
	assert.False(t, same("conf/other.yml"))

	assert.True(t, YAMLFilter("a.yml"))
	assert.True(t, YAMLFilter("a.YAML"))
	assert.False(t, YAMLFilter("a.json"))

	assert.True(t, NoEditorTempFilter("examples.yml"))
	assert.False(t, NoEditorTempFilter(".examples.yml.swp"))
	assert.False(t, NoEditorTempFilter("examples.yml~"))
	assert.False(t, NoEditorTempFilter(".#examples.yml"))
}

func TestAddFileRejectsUnsafePaths(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Stop()

	assert.Error(t, fw.AddFile("../outside/examples.yml"))
	assert.Error(t, fw.AddFile("examples.yml;rm"))
	assert.Error(t, fw.AddFile(filepath.Join(t.TempDir(), "missing", "examples.yml")))
	assert.NoError(t, fw.AddFile(filepath.Join(t.TempDir(), "examples.yml")))
}

func TestFileWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "examples.yml")

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.AddFile(file))

	var (
		mu      sync.Mutex
		batches [][]ChangeEvent
	)
	fw.AddHandler(func(_ context.Context, events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, events)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(file, []byte("button: []\n"), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(batches) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, batch := range batches {
		for _, ev := range batch {
			assert.Equal(t, file, ev.Path)
		}
	}
}

func TestWatchExamplesReloadsCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "examples.yml")

	reg := registry.New()
	cat := catalog.New(reg, nil)

	ew, err := WatchExamples(cat, file, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer ew.Stop()
	assert.Equal(t, file, ew.Path())

	var (
		mu      sync.Mutex
		reloads []error
	)
	ew.OnReload(func(_ context.Context, err error) {
		mu.Lock()
		defer mu.Unlock()
		reloads = append(reloads, err)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, ew.Start(ctx))

	src := "badge:\n  - name: watched\n    props:\n      text: Ricaricato\n      color: success\n"
	require.NoError(t, os.WriteFile(file, []byte(src), 0o600))

	hasExample := func() bool {
		e, ok := reg.Get("badge")
		if !ok {
			return false
		}
		_, ok = e.Example("watched")
		return ok
	}

	require.Eventually(t, hasExample, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(file))
	require.Eventually(t, func() bool { return !hasExample() }, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, reloads)
	for _, err := range reloads {
		assert.NoError(t, err)
	}
}
