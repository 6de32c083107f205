package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"

	"github.com/radiohost/radlog/registry"
)

// Watcher watches a logging config file and re-applies its threshold
// settings to a registry whenever the file changes. Changes are
// debounced because editors and config management tools often produce
// bursts of writes.
type Watcher struct {
	path     string
	reg      *registry.Registry
	debounce time.Duration
	onError  func(error)
	fsw      *fsnotify.Watcher
	wg       sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for config changes.
// Default is 500ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithErrorHandler sets a callback for reload failures (unreadable or
// invalid config). If not set, failures are silently skipped and the
// registry keeps its previous settings.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch starts watching path and re-applies its levels to reg on every
// change. The containing directory is watched rather than the file
// itself so atomic replace-by-rename is picked up. Close stops the
// watcher.
func Watch(path string, reg *registry.Registry, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "resolve %s", path)
	}

	w := &Watcher{
		path:     abs,
		reg:      reg,
		debounce: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create fsnotify watcher")
	}
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		w.fsw.Close()
		return nil, pkgerrors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// loop consumes fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-timer.C:
			w.reload()
		}
	}
}

// reload parses the file and re-applies its levels. A failed reload
// leaves the registry on its previous settings.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	if err := ApplyLevels(cfg, w.reg); err != nil {
		w.reportError(err)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
