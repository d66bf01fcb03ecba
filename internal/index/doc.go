// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package index provides a SQLite-backed search index over transcript
// messages.
//
// The transcript store keeps one JSON file per transcript; searching
// message bodies by loading every file is linear in total history size.
// This package maintains a flat messages table in SQLite so the TUI's
// search prompt stays fast, and an optional store-directory watcher that
// re-indexes transcripts as files change.
//
// # Usage
//
//	idx, err := index.NewMessageIndex(dbPath)
//	err = idx.IndexStore(ctx, store)
//	hits, err := idx.Search(ctx, "goroutines", 20)
//
// The index is derived data: it can always be rebuilt from the store, so
// index errors are never fatal to the application.
package index
