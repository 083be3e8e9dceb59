package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/infra/locker"
)

// ReloadFunc runs one full load-and-swap pass.
type ReloadFunc func() error

// Watcher reloads the dataset when the source file changes on disk. Events
// are debounced so editors that write in bursts trigger one reload, and a
// locker guards against overlapping reloads.
type Watcher struct {
	path     string
	debounce time.Duration
	lock     *locker.Locker
	reload   ReloadFunc
}

func New(path string, debounce time.Duration, lock *locker.Locker, reload ReloadFunc) *Watcher {
	return &Watcher{path: path, debounce: debounce, lock: lock, reload: reload}
}

// Run watches until ctx is cancelled. The watch is set on the parent
// directory because editors and atomic writers replace the file rather than
// writing it in place.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Infof("[Watcher] Watching %s for changes to %s", dir, filepath.Base(w.path))

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			w.runReload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Errorf("[Watcher] Watch error: %v", err)
		}
	}
}

// runReload is the job boundary: a failed or panicking reload is logged and
// the previous snapshot stays live.
func (w *Watcher) runReload() {
	if !w.lock.TryAcquire(w.path) {
		log.Warnf("[Watcher] Reload of %s already in progress, skipping", w.path)
		return
	}
	defer w.lock.Release(w.path)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[Watcher] Panic during reload: %v", r)
		}
	}()

	log.Infof("[Watcher] Source changed, reloading dataset")
	if err := w.reload(); err != nil {
		log.Errorf("[Watcher] Reload failed, keeping current snapshot: %v", err)
		return
	}
	log.Infof("[Watcher] Reload complete")
}
