package registry

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/piperubio/registry/logging"
)

// Watcher drops the catalog cache whenever registry.json changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	catalog *Catalog
	done    chan struct{}
}

// Watch starts watching the catalog's directory. The goroutine stops when ctx
// is cancelled or Close is called.
func Watch(ctx context.Context, catalog *Catalog) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}

	// Editors replace files on save, so watch the directory rather than the file.
	if err := fw.Add(filepath.Dir(catalog.Path())); err != nil {
		_ = fw.Close()

		return nil, fmt.Errorf("could not watch %s: %w", catalog.Path(), err)
	}

	w := &Watcher{watcher: fw, catalog: catalog, done: make(chan struct{})}

	go w.loop(ctx)

	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	logCtx := logging.PackageCtx("registry")
	target := filepath.Clean(w.catalog.Path())

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.InfoContext(logCtx, "Registry changed, clearing cache", "path", event.Name, "op", event.Op.String())
				w.catalog.ClearCache()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			slog.ErrorContext(logCtx, "Registry watcher error", "error", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done

	if err != nil {
		return fmt.Errorf("could not close watcher: %w", err)
	}

	return nil
}
