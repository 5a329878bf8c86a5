package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/mdpages/internal/logfields"
)

const debounceDelay = 300 * time.Millisecond

// Watcher observes an input directory and invokes a rebuild callback when
// files change. Events are debounced so editor save bursts trigger a
// single rebuild, and rebuilds never overlap.
type Watcher struct {
	dir     string
	rebuild func(context.Context)
}

// NewWatcher creates a watcher over dir that calls rebuild on changes.
func NewWatcher(dir string, rebuild func(context.Context)) *Watcher {
	return &Watcher{dir: dir, rebuild: rebuild}
}

// Run blocks processing filesystem events until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := addDirsRecursive(fw, w.dir); err != nil {
		return err
	}
	slog.Info("watching for changes", logfields.Input(w.dir))

	rebuildReq := make(chan struct{}, 1)
	trigger := newDebouncer(rebuildReq)
	go w.rebuildWorker(ctx, rebuildReq)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, ev, trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", logfields.Error(err))
		}
	}
}

// newDebouncer returns a trigger function that signals ch after the
// debounce delay, resetting the timer on every call.
func newDebouncer(ch chan struct{}) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			select {
			case ch <- struct{}{}:
			default:
			}
		})
	}
}

// rebuildWorker runs rebuilds serially, coalescing requests that arrive
// while a rebuild is in flight.
func (w *Watcher) rebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			slog.Info("change detected; rebuilding site")
			w.rebuild(ctx)
		}
	}
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(fw, ev.Name)
		}
	}
	slog.Debug("file change detected", logfields.Path(ev.Name), "op", ev.Op.String())
	trigger()
}

func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				slog.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not
// trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}

	// Editor temp and swap files.
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	if base == "Thumbs.db" {
		return true
	}

	return false
}
