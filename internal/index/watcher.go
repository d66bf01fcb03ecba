// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package index

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/transcript-tui/internal/storage"
)

// =============================================================================
// STORE WATCHER INTERFACE
// =============================================================================

// StoreWatcher is the interface for store-directory watching
// implementations.
type StoreWatcher interface {
	// Watch starts watching for transcript changes.
	Watch() error

	// Close stops watching and releases resources.
	Close() error
}

// WatchStore attaches a watcher to the index that keeps it in sync with
// the store directory. fsnotify is preferred; if the platform watcher
// cannot be created, a polling watcher is used instead.
func (idx *MessageIndex) WatchStore(store *storage.TranscriptStore, debounce time.Duration) error {
	var watcher StoreWatcher
	watcher, err := newFsnotifyWatcher(idx, store, debounce)
	if err != nil {
		watcher = newPollingWatcher(idx, store, debounce)
	}

	if err := watcher.Watch(); err != nil {
		watcher.Close()
		return err
	}

	idx.mu.Lock()
	idx.watcher = watcher
	idx.mu.Unlock()
	return nil
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// fsnotifyWatcher implements StoreWatcher using fsnotify.
type fsnotifyWatcher struct {
	idx      *MessageIndex
	store    *storage.TranscriptStore
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time // transcript ID -> last change time

	ctx    context.Context
	cancel context.CancelFunc
}

// newFsnotifyWatcher creates a new fsnotify-based watcher.
func newFsnotifyWatcher(idx *MessageIndex, store *storage.TranscriptStore, debounce time.Duration) (*fsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &fsnotifyWatcher{
		idx:      idx,
		store:    store,
		watcher:  watcher,
		debounce: debounce,
		pending:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching the store directory.
func (fw *fsnotifyWatcher) Watch() error {
	if err := fw.watcher.Add(fw.store.BaseDir); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processPending()
	return nil
}

// Close stops the watcher.
func (fw *fsnotifyWatcher) Close() error {
	fw.cancel()
	return fw.watcher.Close()
}

// processEvents consumes file system events.
func (fw *fsnotifyWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			id, ok := transcriptIDFromPath(event.Name)
			if !ok {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.mu.Lock()
				fw.pending[id] = time.Now()
				fw.mu.Unlock()
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				fw.mu.Lock()
				delete(fw.pending, id)
				fw.mu.Unlock()
				fw.idx.RemoveTranscript(id) // best effort; rebuilt on next full index
			}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal: the index is derived data.
		}
	}
}

// processPending re-indexes changed transcripts after the debounce
// window, batching rapid successive writes to the same file.
func (fw *fsnotifyWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()

			fw.mu.Lock()
			var toProcess []string
			for id, changed := range fw.pending {
				if now.Sub(changed) >= fw.debounce {
					toProcess = append(toProcess, id)
					delete(fw.pending, id)
				}
			}
			fw.mu.Unlock()

			for _, id := range toProcess {
				fw.reindex(id)
			}
		}
	}
}

// reindex loads one transcript from the store and upserts it.
func (fw *fsnotifyWatcher) reindex(id string) {
	tr, err := fw.store.Load(id)
	if err != nil {
		fw.idx.RemoveTranscript(id)
		return
	}
	fw.idx.IndexTranscript(tr)
}

// =============================================================================
// POLLING WATCHER
// =============================================================================

// pollingWatcher implements StoreWatcher by periodically re-indexing the
// whole store. Used where fsnotify is unavailable.
type pollingWatcher struct {
	idx      *MessageIndex
	store    *storage.TranscriptStore
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// newPollingWatcher creates a polling watcher. The poll interval is the
// debounce duration scaled up, floored at one second.
func newPollingWatcher(idx *MessageIndex, store *storage.TranscriptStore, debounce time.Duration) *pollingWatcher {
	interval := debounce * 4
	if interval < time.Second {
		interval = time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &pollingWatcher{
		idx:      idx,
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts the polling loop.
func (pw *pollingWatcher) Watch() error {
	go func() {
		ticker := time.NewTicker(pw.interval)
		defer ticker.Stop()

		for {
			select {
			case <-pw.ctx.Done():
				return
			case <-ticker.C:
				pw.idx.IndexStore(pw.ctx, pw.store)
			}
		}
	}()
	return nil
}

// Close stops the polling loop.
func (pw *pollingWatcher) Close() error {
	pw.cancel()
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// transcriptIDFromPath extracts the transcript ID from a store file path.
func transcriptIDFromPath(path string) (string, bool) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}
