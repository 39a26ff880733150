package watcher

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/conneroisu/italia/internal/catalog"
	"github.com/conneroisu/italia/internal/logging"
)

// ExamplesWatcher reloads a catalog whenever its examples file changes.
type ExamplesWatcher struct {
	*FileWatcher
	catalog *catalog.Catalog
	path    string
	logger  logging.Logger

	mutex    sync.RWMutex
	onReload []func(ctx context.Context, err error)
}

// WatchExamples watches path and reloads cat from it after every change.
// A removed file reloads an empty document, restoring the built-in
// examples. Call Start to begin watching.
func WatchExamples(cat *catalog.Catalog, path string, delay time.Duration, logger logging.Logger) (*ExamplesWatcher, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	fw, err := NewFileWatcher(delay, logger)
	if err != nil {
		return nil, err
	}

	if err := fw.AddFile(path); err != nil {
		_ = fw.Stop()
		return nil, err
	}
	fw.AddFilter(YAMLFilter)
	fw.AddFilter(NoEditorTempFilter)

	ew := &ExamplesWatcher{
		FileWatcher: fw,
		catalog:     cat,
		path:        path,
		logger:      logger.WithComponent("watcher"),
	}
	fw.AddHandler(ew.reload)

	return ew, nil
}

// Path returns the watched examples file.
func (ew *ExamplesWatcher) Path() string {
	return ew.path
}

// OnReload registers fn to run after every reload with its result.
func (ew *ExamplesWatcher) OnReload(fn func(ctx context.Context, err error)) {
	ew.mutex.Lock()
	defer ew.mutex.Unlock()
	ew.onReload = append(ew.onReload, fn)
}

func (ew *ExamplesWatcher) reload(ctx context.Context, events []ChangeEvent) error {
	ew.logger.Debug(ctx, "Examples file changed", "file", ew.path, "events", len(events))

	var err error
	if _, statErr := os.Stat(ew.path); os.IsNotExist(statErr) {
		ew.logger.Info(ctx, "Examples file removed, restoring built-in examples", "file", ew.path)
		err = ew.catalog.Load(ctx, strings.NewReader(""), ew.path)
	} else {
		err = ew.catalog.LoadFile(ctx, ew.path)
	}

	ew.mutex.RLock()
	hooks := ew.onReload
	ew.mutex.RUnlock()
	for _, fn := range hooks {
		fn(ctx, err)
	}

	return err
}
