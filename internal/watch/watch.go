// ============================================================================
// ngc - RS274/NGC Parser Toolkit
// ============================================================================
//
// Package:     watch
// Description: File watcher that reports debounced changes to program files
// Author:      Mike Stoffels
// Created:     2025-12-11
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	// Debounce is the quiet period after the last event before a change is
	// reported (default: 200ms)
	Debounce time.Duration

	// Logger for watcher events (optional)
	Logger *ngclog.Logger
}

// Watcher reports changes to a fixed set of files. Parent directories are
// watched so editors that replace files on save are still seen.
type Watcher struct {
	files    map[string]bool
	onChange func(path string)
	debounce time.Duration
	logger   *ngclog.Logger

	watcher   *fsnotify.Watcher
	closeOnce sync.Once
}

// New creates a watcher for paths. onChange runs on the Run goroutine, once
// per file and quiet period.
func New(paths []string, onChange func(path string), opts Options) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ngcerror.New("no files to watch").
			WithCode(ngcerror.CodeInvalidInput).
			WithOperation("watch.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = ngclog.Discard()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, ngcerror.Wrap(err, "failed to resolve path").
				WithCode(ngcerror.CodeInvalidInput).
				WithDetail("path", p)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, ngcerror.Newf("cannot watch %s", p).
				WithCode(ngcerror.CodeNotFound).
				WithOperation("watch.New").
				WithDetail("path", p)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ngcerror.Wrap(err, "failed to create watcher").
			WithCode(ngcerror.CodeInternal).
			WithOperation("watch.New")
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, ngcerror.Wrap(err, "failed to watch directory").
				WithCode(ngcerror.CodeInternal).
				WithOperation("watch.New").
				WithDetail("dir", dir)
		}
	}

	return &Watcher{
		files:    files,
		onChange: onChange,
		debounce: debounce,
		logger:   logger.WithFields(ngclog.Fields{"component": "ngc-watch", "dirs": len(dirs)}),
		watcher:  fw,
	}, nil
}

// Files returns the absolute paths being watched
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Run processes events until ctx is done or the watcher is closed. It closes
// the watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	w.logger.Info("Started watching", ngclog.Fields{"files": len(w.files), "debounce": w.debounce.String()})

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping watcher (context cancelled)")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("File event", ngclog.Fields{"file": event.Name, "op": event.Op.String()})

			pending[event.Name] = true
			timer.Reset(w.debounce)

		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			pending = make(map[string]bool)

			for _, name := range names {
				w.onChange(name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Close releases the underlying watcher
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
