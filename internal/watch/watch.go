// ============================================================================
// koala - Compiler Front End
// ============================================================================
//
// Package:     watch
// Description: Re-runs a callback whenever a source file changes on disk
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
)

// DefaultDebounce is the quiet period used when Options.Debounce is zero
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	Logger *mdwlog.Logger

	// Debounce is the quiet period after the last event before onChange runs
	Debounce time.Duration
}

// Watcher watches a single file. The file's directory is watched so that
// editors which save by renaming a temporary file are seen.
type Watcher struct {
	path     string
	logger   *mdwlog.Logger
	debounce time.Duration
}

// New creates a watcher for path, which must be an existing regular file
func New(path string, opts Options) (*Watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "watch "+path).
			WithCode(code).
			WithOperation("watch.New")
	}
	if info.IsDir() {
		return nil, mdwerror.Newf("cannot watch directory %s", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.New")
	}

	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Watcher{
		path:     filepath.Clean(path),
		logger:   opts.Logger.WithField("component", "koala-watch").WithField("file", path),
		debounce: opts.Debounce,
	}, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Run calls onChange once, then again after every debounced change to the
// file, until ctx is cancelled. Errors from onChange are logged and do not
// stop the watcher. Cancellation is a normal return.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "create file watcher").
			WithCode(mdwerror.CodeIOError).
			WithOperation("watch.Run")
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return mdwerror.Wrap(err, "watch directory "+dir).
			WithCode(mdwerror.CodeIOError).
			WithOperation("watch.Run")
	}

	w.logger.Info("Watching for changes")
	w.trigger(ctx, onChange)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping file watcher (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Trace("File event", mdwlog.Fields{"op": event.Op.String()})

			// Restart the quiet period on every event
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.trigger(ctx, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("Watcher error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) trigger(ctx context.Context, onChange func(context.Context) error) {
	if ctx.Err() != nil {
		return
	}
	if err := onChange(ctx); err != nil {
		w.logger.Debug("Change handler failed", mdwlog.Fields{"error": err.Error()})
	}
}
