// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package dataset

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/vulntor/eventkit/pkg/collection"
	"github.com/vulntor/eventkit/pkg/event"
)

// Event names fired by a Watcher.
const (
	// EventReload fires with the freshly loaded *collection.Collection[any].
	EventReload = "reload"
	// EventReloadError fires with the error that prevented a reload.
	EventReloadError = "reload-error"
)

// DefaultDebounce is the delay between the last write and the reload.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a dataset file whenever it changes and fires EventReload
// through its embedded emitter. Rapid successive writes are coalesced into
// a single reload.
//
// Listeners run on the debounce timer goroutine, one reload at a time.
// Register them before calling Start.
type Watcher struct {
	*event.Emitter

	path    string
	opts    []collection.Option[any]
	watcher *fsnotify.Watcher

	debounceDelay time.Duration
	logger        zerolog.Logger

	// mu guards debounceTimer and serializes dispatch.
	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for the dataset at path. opts are applied to
// every reloaded collection.
func NewWatcher(path string, logger zerolog.Logger, opts ...collection.Option[any]) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		Emitter:       event.NewEmitter(event.WithLogger(logger)),
		path:          path,
		opts:          opts,
		watcher:       fw,
		debounceDelay: DefaultDebounce,
		logger:        logger.With().Str("component", "dataset.watcher").Logger(),
	}, nil
}

// SetDebounce changes the reload delay.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceDelay = d
}

// Start watches the dataset file until ctx is canceled. It blocks, so run it
// in its own goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	// fsnotify watches directories; events are filtered by file name below.
	dir := filepath.Dir(w.path)
	file := filepath.Base(w.path)

	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("Failed to watch dataset directory")
		return err
	}

	w.mu.Lock()
	delay := w.debounceDelay
	w.mu.Unlock()

	w.logger.Info().
		Str("file", w.path).
		Dur("debounce", delay).
		Msg("Started watching dataset")

	defer func() {
		w.stopTimer()
		if err := w.watcher.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("Error closing watcher")
		}
		w.logger.Info().Msg("Stopped watching dataset")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != file {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				w.logger.Debug().
					Str("op", ev.Op.String()).
					Str("file", ev.Name).
					Msg("Detected dataset change")
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}

// Reload loads the dataset now and fires EventReload or EventReloadError.
func (w *Watcher) Reload() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloadLocked()
}

func (w *Watcher) reloadLocked() error {
	items, err := Load(w.path, w.opts...)
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to reload dataset")
		if _, ferr := w.Fire(EventReloadError, err); ferr != nil {
			w.logger.Warn().Err(ferr).Msg("Reload error listener failed")
		}
		return err
	}

	w.logger.Info().Int("items", items.Count()).Msg("Dataset reloaded")
	_, err = w.Fire(EventReload, items)
	return err
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if err := w.reloadLocked(); err != nil {
			w.logger.Debug().Err(err).Msg("Reload finished with error")
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}
